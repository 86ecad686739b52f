package encoder

import (
	"image"
	"math"
)

// Encoder encodes a rendered canvas to a specific output format.
type Encoder interface {
	// Format returns the output format name ("jpeg", "png", "webp").
	Format() string

	// MIMEType returns the media type written into data URLs.
	MIMEType() string

	// Encode converts the image to bytes at the given quality (1-100).
	// Lossless encoders ignore quality.
	Encode(img image.Image, quality int) ([]byte, error)

	// Lossy reports whether quality has any effect on the output.
	Lossy() bool

	// Available returns true if the encoder is ready to use.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

// DefaultQuality is used when a caller passes a quality outside 1-100.
const DefaultQuality = 90

// Percent maps a [0,1] quality onto the 1-100 scale the encoders take.
// Anything that rounds below 1 is clamped to 1, the lowest setting.
func Percent(q float64) int {
	p := int(math.Round(q * 100))
	if p < 1 {
		return 1
	}
	if p > 100 {
		return 100
	}
	return p
}

func clampQuality(quality int) int {
	if quality <= 0 || quality > 100 {
		return DefaultQuality
	}
	return quality
}
