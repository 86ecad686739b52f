package transform

import (
	"image"

	"github.com/GunmeetS/rotate-resize-image/internal/encoder"
	"github.com/pkg/errors"
)

// Output is one encoded canvas.
type Output struct {
	Format    string
	MIMEType  string
	Extension string
	Width    int
	Height   int
	Quality  float64
	Data     []byte
}

// Engine renders and encodes images. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	registry *encoder.Registry
}

// NewEngine creates an engine that encodes through registry.
func NewEngine(registry *encoder.Registry) *Engine {
	if registry == nil {
		registry = encoder.NewRegistry()
	}
	return &Engine{registry: registry}
}

// Transform renders img under p and encodes the canvas once.
func (e *Engine) Transform(img image.Image, p Params, format string, quality float64) (*Output, error) {
	canvas, _, err := Render(img, p)
	if err != nil {
		return nil, err
	}
	return e.Encode(canvas, format, quality)
}

// Encode encodes an already rendered canvas. quality is in [0,1].
func (e *Engine) Encode(canvas image.Image, format string, quality float64) (*Output, error) {
	enc := e.registry.Resolve(format)

	data, err := enc.Encode(canvas, encoder.Percent(quality))
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", enc.Format())
	}

	b := canvas.Bounds()
	return &Output{
		Format:    enc.Format(),
		MIMEType:  enc.MIMEType(),
		Extension: enc.Extension(),
		Width:     b.Dx(),
		Height:    b.Dy(),
		Quality:   quality,
		Data:      data,
	}, nil
}

// Lossy reports whether quality changes the output of the encoder that
// format resolves to.
func (e *Engine) Lossy(format string) bool {
	return e.registry.Resolve(format).Lossy()
}

// Formats lists the output formats that have a working encoder.
func (e *Engine) Formats() []string {
	return e.registry.Available()
}

func (e *Engine) String() string {
	return e.registry.String()
}
