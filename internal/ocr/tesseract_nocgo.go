//go:build !cgo

package ocr

import "context"

// TesseractEngine is unavailable without cgo.
type TesseractEngine struct {
	opts TesseractOptions
}

// NewTesseract always fails in builds without cgo.
func NewTesseract(opts TesseractOptions) (*TesseractEngine, error) {
	return nil, ErrUnavailable
}

func (e *TesseractEngine) Detect(ctx context.Context, path string) ([]Detection, error) {
	return nil, ErrUnavailable
}

func (e *TesseractEngine) Info() EngineInfo {
	return EngineInfo{Backend: "none", Languages: e.opts.languages(), Level: e.opts.Level.String()}
}

func (e *TesseractEngine) Close() error { return nil }
