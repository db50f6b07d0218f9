package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPreprocess_ZeroValueIsIdentity(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{200, 10, 10, 255})
	var opts PreprocessOptions
	if opts.Enabled() {
		t.Fatal("zero options should be disabled")
	}
	if got := Preprocess(img, opts); got != img {
		t.Error("zero options should return the input image")
	}
}

func TestPreprocess_Upscale(t *testing.T) {
	img := createInMemoryImage(100, 50, color.White)

	out := Preprocess(img, PreprocessOptions{MinWidth: 400})

	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 200 {
		t.Errorf("dimensions: got %dx%d, want 400x200", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_NoDownscale(t *testing.T) {
	img := createInMemoryImage(800, 50, color.White)

	out := Preprocess(img, PreprocessOptions{MinWidth: 400})

	if out.Bounds().Dx() != 800 {
		t.Errorf("width: got %d, want 800", out.Bounds().Dx())
	}
}

func TestPreprocess_Threshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 1))
	for x := 0; x < 20; x++ {
		v := uint8(x * 12)
		img.Set(x, 0, color.RGBA{v, v, v, 255})
	}

	out := Preprocess(img, PreprocessOptions{Grayscale: true, Threshold: 128})

	for x := 0; x < 20; x++ {
		g := color.GrayModel.Convert(out.At(x, 0)).(color.Gray)
		if g.Y != 0 && g.Y != 255 {
			t.Fatalf("pixel %d: got gray %d, want 0 or 255", x, g.Y)
		}
	}
}

func TestDefaultPreprocess(t *testing.T) {
	if !DefaultPreprocess().Enabled() {
		t.Error("default preprocessing should be enabled")
	}
}

func TestPreprocessFile(t *testing.T) {
	path := createTestImage(t, 60, 30, color.White)

	data, err := PreprocessFile(path, DefaultPreprocess())
	if err != nil {
		t.Fatalf("PreprocessFile failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 1000 {
		t.Errorf("width: got %d, want 1000", img.Bounds().Dx())
	}
}
