package ocr

import (
	"errors"
	"fmt"
)

// ErrDecode is wrapped by DecodeError.
var ErrDecode = errors.New("image could not be decoded")

// ErrUnavailable is returned by NewTesseract when the binary was built without cgo.
var ErrUnavailable = errors.New("tesseract library not available in this build")

// DecodeError reports an image file that is not a decodable image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// EngineError reports a failure inside the OCR engine.
type EngineError struct {
	Path string
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("OCR failed for %s: %v", e.Path, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
