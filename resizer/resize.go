package resizer

import (
	"context"
	"image"

	"github.com/GunmeetS/rotate-resize-image/internal/encoder"
	"github.com/GunmeetS/rotate-resize-image/internal/transform"
	"github.com/pkg/errors"
)

// engine is shared by all calls; it carries no per-call state.
var engine = transform.NewEngine(encoder.NewRegistry())

// ResizeImage decodes f, fits it into the options' bounding box, rotates
// it and encodes the canvas. Formats without an encoder fall back to PNG.
func ResizeImage(ctx context.Context, f *File, opts Options) (*EncodedImage, error) {
	img, err := decode(ctx, f)
	if err != nil {
		return nil, err
	}
	out, err := engine.Transform(img, opts.params(), opts.format(), opts.quality())
	if err != nil {
		return nil, err
	}
	return fromOutput(out), nil
}

// AvailableFormats lists the output formats that encode natively. Any
// other requested format is written as PNG.
func AvailableFormats() []Format {
	names := engine.Formats()
	formats := make([]Format, len(names))
	for i, n := range names {
		formats[i] = Format(n)
	}
	return formats
}

// Encoders describes the available encoders, for diagnostics.
func Encoders() string {
	return engine.String()
}

func decode(ctx context.Context, f *File) (image.Image, error) {
	if f == nil {
		return nil, errors.Wrap(ErrRead, "no file")
	}
	img, _, err := transform.Decode(ctx, f.Data)
	return img, err
}

// render runs the decode stage and draws the canvas.
func render(ctx context.Context, f *File, opts Options) (image.Image, error) {
	img, err := decode(ctx, f)
	if err != nil {
		return nil, err
	}
	canvas, _, err := transform.Render(img, opts.params())
	if err != nil {
		return nil, err
	}
	return canvas, nil
}

func encode(canvas image.Image, format string, quality float64) (*EncodedImage, error) {
	out, err := engine.Encode(canvas, format, quality)
	if err != nil {
		return nil, err
	}
	return fromOutput(out), nil
}

func fromOutput(out *transform.Output) *EncodedImage {
	return &EncodedImage{
		Format:    Format(out.Format),
		MIMEType:  out.MIMEType,
		Extension: out.Extension,
		Width:     out.Width,
		Height:    out.Height,
		Quality:   out.Quality,
		Data:      out.Data,
	}
}
