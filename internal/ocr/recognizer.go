package ocr

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/ocrscan/internal/imaging"
)

// Recognizer turns an image file into a single string of recognized text.
//
// A Recognizer owns its engine. Construct it once, reuse it for every image
// and Close it at exit. It is not safe for concurrent use; see Pool.
type Recognizer struct {
	engine   Engine
	maxBytes uint64
	log      *zap.Logger
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithMaxImageBytes rejects files larger than n bytes before OCR. Zero disables the check.
func WithMaxImageBytes(n uint64) Option {
	return func(r *Recognizer) { r.maxBytes = n }
}

// WithLogger sets the logger used for per-image debug output.
func WithLogger(log *zap.Logger) Option {
	return func(r *Recognizer) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRecognizer wraps an engine.
func NewRecognizer(engine Engine, opts ...Option) *Recognizer {
	r := &Recognizer{engine: engine, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Detect probes the file and returns the engine's detections in order.
//
// Returns:
//   - *DecodeError when the file is not a decodable image
//   - an error wrapping fs.ErrNotExist when the file is missing
//   - *EngineError when the engine itself fails
func (r *Recognizer) Detect(ctx context.Context, path string) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := imaging.Probe(path, r.maxBytes)
	if err != nil {
		if errors.Is(err, imaging.ErrUndecodable) {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return nil, err
	}

	detections, err := r.engine.Detect(ctx, path)
	if err != nil {
		return nil, &EngineError{Path: path, Err: err}
	}

	r.log.Debug("recognized image",
		zap.String("path", path),
		zap.String("format", info.Format),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.Int("fragments", len(detections)))

	return detections, nil
}

// Scan recognizes the image at path and joins the fragment texts with single
// spaces in detection order. An image without text yields "".
func (r *Recognizer) Scan(ctx context.Context, path string) (string, error) {
	detections, err := r.Detect(ctx, path)
	if err != nil {
		return "", err
	}
	return Join(detections), nil
}

// Close releases the engine.
func (r *Recognizer) Close() error {
	return r.engine.Close()
}

// Join concatenates detection texts with a single space, keeping their order.
// Fragment text is not otherwise normalized.
func Join(detections []Detection) string {
	parts := make([]string, len(detections))
	for i, d := range detections {
		parts[i] = d.Text
	}
	return strings.Join(parts, " ")
}
