// Package imaging inspects and prepares image files for text recognition.
//
// Probe reads only the header of a file: the size is checked against an
// optional limit, the content type is sniffed from magic bytes and the
// dimensions come from the registered decoder. PNG, JPEG, GIF, BMP, TIFF and
// WebP decoders are registered by this package.
//
// # Preprocessing
//
// Scanned pages and photos often OCR better after cleanup. Preprocess runs a
// fixed pipeline of optional steps:
//   - Gaussian denoise
//   - upscaling of narrow images (Lanczos)
//   - grayscale conversion
//   - contrast adjustment and unsharp masking
//   - binarization at a luminance threshold
//
// PreprocessFile returns PNG bytes suitable for an engine that accepts
// in-memory images.
//
// # Error Handling
//
// Probe wraps ErrUndecodable when no decoder accepts the file and ErrTooLarge
// when the size limit is exceeded. Both can be tested with errors.Is.
package imaging
