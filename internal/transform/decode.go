package transform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode is returned when input bytes are not a loadable image.
	ErrDecode = errors.New("failed to load image")

	// ErrRenderingUnavailable is returned when no drawing surface can
	// be allocated for the requested canvas.
	ErrRenderingUnavailable = errors.New("rendering surface not available")
)

// Decode decodes data into an owned bitmap. Only the first frame of
// animated formats is returned.
func Decode(ctx context.Context, data []byte) (image.Image, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errors.Wrap(ErrDecode, "empty input")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", errors.Wrapf(ErrDecode, "empty bounds %v", b)
	}
	return img, format, nil
}

// DecodeConfig reads dimensions and format without decoding pixels.
func DecodeConfig(data []byte) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return cfg, format, nil
}
