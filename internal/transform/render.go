package transform

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// MaxCanvasArea is the largest surface Render allocates, in pixels.
const MaxCanvasArea = 1 << 28

// Render scales img into the bounding box and rotates it onto a canvas.
// With no rotation the scaled image is the canvas. Otherwise the scaled
// image is rotated clockwise about the canvas centre; corners that fall
// outside the canvas are clipped and uncovered pixels stay transparent.
func Render(img image.Image, p Params) (*image.NRGBA, Layout, error) {
	b := img.Bounds()
	l := Plan(b.Dx(), b.Dy(), p)

	if err := checkSurface(l.CanvasWidth, l.CanvasHeight); err != nil {
		return nil, l, err
	}

	scaled := imaging.Resize(img, l.Width, l.Height, imaging.Lanczos)
	if l.Degrees == 0 {
		return scaled, l, nil
	}

	// imaging rotates counter-clockwise; canvas rotation is clockwise.
	rotated := imaging.Rotate(scaled, -float64(l.Degrees), color.Transparent)
	canvas := imaging.New(l.CanvasWidth, l.CanvasHeight, color.Transparent)
	return imaging.PasteCenter(canvas, rotated), l, nil
}

func checkSurface(w, h int) error {
	if w < 1 || h < 1 {
		return errors.Wrapf(ErrRenderingUnavailable, "canvas %dx%d", w, h)
	}
	if int64(w)*int64(h) > MaxCanvasArea {
		return errors.Wrapf(ErrRenderingUnavailable, "canvas %dx%d exceeds %d pixels", w, h, MaxCanvasArea)
	}
	return nil
}
