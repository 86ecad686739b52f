package resizer

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/GunmeetS/rotate-resize-image/internal/encoder"
	"github.com/GunmeetS/rotate-resize-image/internal/hasher"
	"github.com/GunmeetS/rotate-resize-image/internal/transform"
	"github.com/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat accepts a format name, extension or MIME type.
func ParseFormat(s string) (Format, error) {
	name, ok := encoder.Normalize(s)
	if !ok {
		return "", errors.Errorf("unsupported format %q (use jpeg, png or webp)", s)
	}
	return Format(name), nil
}

// MIMEType returns the media type of the format.
func (f Format) MIMEType() string {
	return "image/" + string(f)
}

// DefaultQuality is used when Options.Quality is zero.
const DefaultQuality = 0.9

// Options describes one resize. The zero Format is JPEG.
type Options struct {
	MaxWidth  int
	MaxHeight int
	// Quality is 0-1 and ignored by PNG. Zero means DefaultQuality, not
	// the lowest setting; pass 0.01 (or anything below it) for that.
	Quality float64
	Degrees int // clockwise rotation
	Format  Format
}

// DefaultOptions returns options for a maxWidth×maxHeight box at the
// default quality, as JPEG.
func DefaultOptions(maxWidth, maxHeight int) Options {
	return Options{
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
		Quality:   DefaultQuality,
		Format:    JPEG,
	}
}

func (o Options) quality() float64 {
	if o.Quality == 0 {
		return DefaultQuality
	}
	return o.Quality
}

func (o Options) params() transform.Params {
	return transform.Params{
		MaxWidth:  o.MaxWidth,
		MaxHeight: o.MaxHeight,
		Degrees:   o.Degrees,
	}
}

func (o Options) format() string {
	if o.Format == "" {
		return string(JPEG)
	}
	return string(o.Format)
}

// EncodedImage is an encoded canvas held in memory.
type EncodedImage struct {
	Format    Format
	MIMEType  string
	Extension string // file extension without the dot
	Width     int
	Height    int
	Quality   float64
	Data      []byte
}

// Size returns the encoded length in bytes.
func (e *EncodedImage) Size() int64 { return int64(len(e.Data)) }

// SizeKB returns the encoded length in kilobytes (1024 bytes).
func (e *EncodedImage) SizeKB() float64 { return float64(len(e.Data)) / 1024 }

// DataURL returns the image as a base64 data URL, usable directly as an
// image source.
func (e *EncodedImage) DataURL() string {
	var b strings.Builder
	b.Grow(len(e.MIMEType) + 13 + base64.StdEncoding.EncodedLen(len(e.Data)))
	b.WriteString("data:")
	b.WriteString(e.MIMEType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(e.Data))
	return b.String()
}

// Digest returns a 16 hex character content digest of the encoded bytes.
func (e *EncodedImage) Digest() string {
	return hasher.Digest(e.Data)
}

// WriteTo writes the encoded bytes to w.
func (e *EncodedImage) WriteTo(w io.Writer) (int64, error) {
	if len(e.Data) == 0 {
		return 0, errors.New("no encoded data")
	}
	n, err := w.Write(e.Data)
	return int64(n), err
}

// CompressionResult is the outcome of ResizeToTargetSize.
type CompressionResult struct {
	Image            *EncodedImage
	SizeKB           float64
	CompressionRatio float64 // original / final size, 0 when the final size is 0
	Quality          float64 // quality of the returned encode
	Iterations       int
}

// ImageInfo describes an image without transforming it.
type ImageInfo struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	SizeKB float64 `json:"sizeKB"`
	Type   string  `json:"type"`
}

// ValidationResult is returned by the validators. They never fail;
// Error is set when Valid is false.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
