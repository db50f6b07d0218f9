//go:build cgo

package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/ocrscan/internal/imaging"
)

// TesseractEngine is an Engine backed by a single gosseract client.
// Calls are serialized; use one engine per goroutine for parallel work.
type TesseractEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
	opts   TesseractOptions
	level  gosseract.PageIteratorLevel
}

// NewTesseract creates the client and loads the language model.
//
// The model is loaded eagerly by recognizing a blank image, so a missing
// library or traineddata file surfaces here rather than on the first scan.
func NewTesseract(opts TesseractOptions) (*TesseractEngine, error) {
	client := gosseract.NewClient()

	if opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(opts.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(opts.languages()...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if opts.PageSegMode > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(opts.PageSegMode)); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}

	e := &TesseractEngine{client: client, opts: opts, level: iteratorLevel(opts.Level)}
	if err := e.warmUp(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialize tesseract: %w", err)
	}
	return e, nil
}

func iteratorLevel(l Level) gosseract.PageIteratorLevel {
	switch l {
	case LevelWord:
		return gosseract.RIL_WORD
	case LevelPara:
		return gosseract.RIL_PARA
	case LevelBlock:
		return gosseract.RIL_BLOCK
	default:
		return gosseract.RIL_TEXTLINE
	}
}

func (e *TesseractEngine) warmUp() error {
	blank := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range blank.Pix {
		blank.Pix[i] = 0xff
	}
	data, err := imaging.EncodePNG(blank)
	if err != nil {
		return err
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return err
	}
	_, err = e.client.Text()
	return err
}

// Detect recognizes the image at path and returns non-empty fragments at the
// configured level in reading order.
func (e *TesseractEngine) Detect(ctx context.Context, path string) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.Preprocess.Enabled() {
		data, err := imaging.PreprocessFile(path, e.opts.Preprocess)
		if err != nil {
			return nil, err
		}
		if err := e.client.SetImageFromBytes(data); err != nil {
			return nil, fmt.Errorf("failed to set image: %w", err)
		}
	} else if err := e.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := e.client.GetBoundingBoxes(e.level)
	if err != nil {
		return nil, fmt.Errorf("failed to get bounding boxes: %w", err)
	}

	detections := make([]Detection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		detections = append(detections, Detection{
			Text:       text,
			Confidence: box.Confidence / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}
	return detections, nil
}

// Info describes the engine.
func (e *TesseractEngine) Info() EngineInfo {
	return EngineInfo{
		Backend:   "gosseract",
		Version:   gosseract.Version(),
		Languages: e.opts.languages(),
		Level:     e.opts.Level.String(),
	}
}

// Close releases the native client.
func (e *TesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}
