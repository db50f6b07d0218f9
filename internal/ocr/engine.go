package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/ironsheep/ocrscan/internal/imaging"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Detection is one text fragment reported by an engine.
type Detection struct {
	Bounds Bounds `json:"bounds"`

	// Text is the recognized fragment, already trimmed by the engine.
	Text string `json:"text"`

	// Confidence is the engine's score normalized to 0.0 - 1.0.
	Confidence float64 `json:"confidence"`
}

// Engine detects text fragments in an image file.
//
// Implementations return detections in the engine's reading order and may
// hold native resources, released by Close.
type Engine interface {
	Detect(ctx context.Context, path string) ([]Detection, error)
	Close() error
}

// Level selects the granularity of the fragments an engine reports.
type Level int

const (
	LevelLine Level = iota
	LevelWord
	LevelPara
	LevelBlock
)

// ParseLevel converts "line", "word", "para" or "block" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line", "textline":
		return LevelLine, nil
	case "word":
		return LevelWord, nil
	case "para", "paragraph":
		return LevelPara, nil
	case "block":
		return LevelBlock, nil
	default:
		return LevelLine, fmt.Errorf("unknown detection level %q (want line, word, para or block)", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelWord:
		return "word"
	case LevelPara:
		return "para"
	case LevelBlock:
		return "block"
	default:
		return "line"
	}
}

// TesseractOptions configures a Tesseract engine.
type TesseractOptions struct {
	// Languages are Tesseract language codes, "eng" when empty.
	Languages []string

	// PageSegMode is the Tesseract page segmentation mode (0-13).
	// Zero keeps the library default.
	PageSegMode int

	Level Level

	// TessdataPrefix overrides the directory holding *.traineddata files.
	TessdataPrefix string

	// Preprocess is applied to every image before recognition when enabled.
	Preprocess imaging.PreprocessOptions
}

func (o TesseractOptions) languages() []string {
	if len(o.Languages) == 0 {
		return []string{"eng"}
	}
	return o.Languages
}

// EngineInfo describes a constructed engine.
type EngineInfo struct {
	Backend   string   `json:"backend"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages"`
	Level     string   `json:"level"`
}
