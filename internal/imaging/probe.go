package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// headerSize is the number of leading bytes filetype needs to identify a file.
const headerSize = 262

// ErrUndecodable is wrapped by Probe when the file is not an image Go can decode.
var ErrUndecodable = errors.New("image cannot be decoded")

// ErrTooLarge is returned by Probe when a file exceeds the caller's size limit.
var ErrTooLarge = errors.New("image exceeds maximum size")

// ImageInfo contains image metadata gathered without decoding pixels.
type ImageInfo struct {
	Path          string
	Width         int
	Height        int
	Format        string // decoder name, e.g. "png"
	MIME          string // sniffed from magic bytes, empty when unknown
	FileSizeBytes int64
}

// Probe reads the header of an image file and returns its metadata.
//
// Parameters:
//   - path: file to inspect
//   - maxBytes: reject files larger than this; zero disables the check
//
// Returns an error wrapping ErrUndecodable when no registered decoder accepts
// the file, ErrTooLarge when the size limit is exceeded, or the underlying
// os error when the file cannot be opened.
func Probe(path string, maxBytes uint64) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUndecodable, path)
	}
	if maxBytes > 0 && uint64(stat.Size()) > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, stat.Size())
	}

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	head = head[:n]

	info := &ImageInfo{Path: path, FileSizeBytes: stat.Size()}
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		info.MIME = kind.MIME.Value
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image: %w", err)
	}
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUndecodable, path, err)
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
	info.Format = format

	return info, nil
}

// IsImage reports whether the file content looks like an image, ignoring its name.
func IsImage(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read file header: %w", err)
	}
	return filetype.IsImage(head[:n]), nil
}
