package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// PreprocessOptions controls the cleanup applied to an image before OCR.
// The zero value leaves the image untouched.
type PreprocessOptions struct {
	// MinWidth upscales narrower images to this width, keeping aspect ratio.
	MinWidth int
	// Denoise is the Gaussian blur radius applied first. Zero disables it.
	Denoise float64
	Grayscale bool
	// Contrast is a percentage in (-100, 100).
	Contrast float64
	// Sharpen is the sigma of the unsharp mask. Zero disables it.
	Sharpen float64
	// Threshold binarizes the image at this luminance level. Zero disables it.
	Threshold uint8
}

// DefaultPreprocess returns the settings used when preprocessing is switched on.
func DefaultPreprocess() PreprocessOptions {
	return PreprocessOptions{
		MinWidth:  1000,
		Grayscale: true,
		Contrast:  20,
		Sharpen:   1.0,
	}
}

// Enabled reports whether any step would change the image.
func (o PreprocessOptions) Enabled() bool {
	return o.MinWidth > 0 || o.Denoise > 0 || o.Grayscale || o.Contrast != 0 || o.Sharpen > 0 || o.Threshold > 0
}

// Load decodes an image file, honoring EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// Preprocess applies the enabled steps in a fixed order:
// denoise, upscale, grayscale, contrast, sharpen, threshold.
func Preprocess(img image.Image, opts PreprocessOptions) image.Image {
	out := img

	if opts.Denoise > 0 {
		out = blur.Gaussian(out, opts.Denoise)
	}
	if opts.MinWidth > 0 && out.Bounds().Dx() < opts.MinWidth {
		out = imaging.Resize(out, opts.MinWidth, 0, imaging.Lanczos)
	}
	if opts.Grayscale {
		out = imaging.Grayscale(out)
	}
	if opts.Contrast != 0 {
		out = imaging.AdjustContrast(out, opts.Contrast)
	}
	if opts.Sharpen > 0 {
		out = imaging.Sharpen(out, opts.Sharpen)
	}
	if opts.Threshold > 0 {
		out = segment.Threshold(out, opts.Threshold)
	}

	return out
}

// EncodePNG encodes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// PreprocessFile loads, preprocesses and re-encodes an image so it can be
// handed to an OCR engine without touching disk.
func PreprocessFile(path string, opts PreprocessOptions) ([]byte, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return EncodePNG(Preprocess(img, opts))
}
