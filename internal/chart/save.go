package chart

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Save writes img to path, choosing PNG, JPEG, GIF, TIFF or BMP from the extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
