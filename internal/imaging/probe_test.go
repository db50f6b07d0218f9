package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return path
}

func TestProbe(t *testing.T) {
	path := createTestImage(t, 120, 40, color.White)

	info, err := Probe(path, 0)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Width != 120 || info.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 120x40", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %q, want png", info.Format)
	}
	if info.MIME != "image/png" {
		t.Errorf("MIME: got %q, want image/png", info.MIME)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d", info.FileSizeBytes)
	}
}

func TestProbe_NonExistent(t *testing.T) {
	_, err := Probe("/nonexistent/path/to/image.png", 0)
	if err == nil {
		t.Fatal("Probe should fail for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestProbe_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Probe(path, 0)
	if !errors.Is(err, ErrUndecodable) {
		t.Errorf("expected ErrUndecodable, got %v", err)
	}
}

func TestProbe_TooLarge(t *testing.T) {
	path := createTestImage(t, 50, 50, color.Black)

	_, err := Probe(path, 10)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestIsImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := createTestImage(t, 10, 10, color.White)
	renamed := filepath.Join(dir, "picture.dat")
	if err := os.Rename(imgPath, renamed); err != nil {
		t.Fatal(err)
	}
	textPath := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(textPath, []byte("just some words"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := IsImage(renamed)
	if err != nil {
		t.Fatalf("IsImage failed: %v", err)
	}
	if !ok {
		t.Error("PNG content with .dat name should be detected as image")
	}

	ok, err = IsImage(textPath)
	if err != nil {
		t.Fatalf("IsImage failed: %v", err)
	}
	if ok {
		t.Error("text content with .png name should not be detected as image")
	}
}
