// Package image loads and stores kuwahara pixmaps in common file formats.
package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an image file format.
type Format uint8

const (
	// FormatUnknown is returned for unrecognized names and extensions.
	FormatUnknown Format = iota

	// FormatPNG is lossless PNG. It is the default output format.
	FormatPNG

	// FormatJPEG is lossy JPEG; alpha is discarded on encode.
	FormatJPEG

	// FormatGIF is paletted GIF.
	FormatGIF

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF.
	FormatTIFF

	// FormatWebP is WebP. It can be decoded but not encoded.
	FormatWebP
)

// formatNames maps decoder names reported by image.Decode and canonical
// names to formats.
var formatNames = map[string]Format{
	"png":  FormatPNG,
	"jpeg": FormatJPEG,
	"gif":  FormatGIF,
	"bmp":  FormatBMP,
	"tiff": FormatTIFF,
	"webp": FormatWebP,
}

// extFormats maps lower-case file extensions to formats.
var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// ParseFormat returns the format with the given decoder name, such as
// "png" or "jpeg".
func ParseFormat(name string) Format {
	return formatNames[strings.ToLower(name)]
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) Format {
	return extFormats[strings.ToLower(filepath.Ext(path))]
}

// String returns the decoder name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// CanEncode reports whether Encode supports the format.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}
