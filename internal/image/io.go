package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/kuwahara"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// EncodeOptions configures Encode and Save.
type EncodeOptions struct {
	// Quality is the JPEG quality (1-100). Zero means DefaultQuality.
	Quality int
}

// Load reads the image file at path, auto-detecting the format from its
// content.
func Load(path string) (*kuwahara.Pixmap, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image held in memory, auto-detecting the format.
func LoadFromBytes(data []byte) (*kuwahara.Pixmap, Format, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*kuwahara.Pixmap, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, FormatUnknown, fmt.Errorf("image: decode: %w", ErrUnsupportedFormat)
		}
		return nil, FormatUnknown, fmt.Errorf("image: decode: %w", err)
	}
	return kuwahara.FromImage(img), ParseFormat(name), nil
}

// Save writes pm to path in the format implied by the path's extension.
func Save(path string, pm *kuwahara.Pixmap, opts EncodeOptions) error {
	format := FormatFromPath(path)
	if !format.CanEncode() {
		return fmt.Errorf("image: save %q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, pm, format, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes pm to w in the given format.
func Encode(w io.Writer, pm *kuwahara.Pixmap, format Format, opts EncodeOptions) error {
	img := pm.ToImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(opts.Quality)})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("image: encode %s: %w", format, ErrUnsupportedFormat)
	}

	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// EncodeToBytes encodes pm in the given format and returns the bytes.
func EncodeToBytes(pm *kuwahara.Pixmap, format Format, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, pm, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clampQuality maps q to the JPEG range 1-100, with 0 meaning the default.
func clampQuality(q int) int {
	switch {
	case q == 0:
		return DefaultQuality
	case q < 1:
		return 1
	case q > 100:
		return 100
	default:
		return q
	}
}
