// Package ocr recognizes text in image files using Tesseract.
//
// An Engine reports ordered text fragments (Detection values) with their
// bounding boxes and confidence. A Recognizer wraps an Engine and reduces
// those detections to one string: fragment texts joined by a single space in
// the order the engine reported them. Nothing else is normalized, so callers
// that compare text should fold case themselves.
//
// # Prerequisites
//
// The Tesseract engine requires cgo and the Tesseract library:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Builds without cgo compile, but NewTesseract returns ErrUnavailable.
//
// # Lifecycle
//
// Loading a language model is expensive. NewTesseract loads it once and the
// resulting engine is reused for every image until Close. A single engine
// serializes its calls; Pool holds several recognizers for parallel scans.
//
// # Detection Level
//
// Tesseract can report fragments per text line (the default), word,
// paragraph or block. The joined text is the same modulo whitespace at every
// level; lines keep fragment counts small.
//
// # Error Handling
//
// Recognizer.Detect and Recognizer.Scan return:
//   - *DecodeError (matching ErrDecode) when the file is not a decodable image
//   - an error matching fs.ErrNotExist when the file is missing
//   - *EngineError when Tesseract fails on an otherwise valid image
package ocr
