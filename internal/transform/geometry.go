package transform

import "math"

// Params describes the geometric part of a resize request.
type Params struct {
	MaxWidth  int
	MaxHeight int
	Degrees   int // clockwise
}

// Layout is the computed geometry of one transform.
type Layout struct {
	Width, Height             int // fitted size before rotation
	CanvasWidth, CanvasHeight int
	Degrees                   int
}

// Fit scales w×h to fit inside maxW×maxH preserving aspect ratio.
// The scale is capped at 1, so images are never enlarged.
func Fit(w, h, maxW, maxH int) (newW, newH int, scale float64) {
	scale = math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	scale = math.Min(scale, 1)

	newW = int(math.Round(float64(w) * scale))
	newH = int(math.Round(float64(h) * scale))
	return newW, newH, scale
}

// CanvasSize returns the drawing surface extent for a fitted w×h image
// rotated by degrees. Anything that is not a multiple of 180 swaps the
// sides, including non-right angles.
func CanvasSize(w, h, degrees int) (int, int) {
	if degrees%180 != 0 {
		return h, w
	}
	return w, h
}

// Plan computes the layout of a srcW×srcH image under p.
func Plan(srcW, srcH int, p Params) Layout {
	w, h, _ := Fit(srcW, srcH, p.MaxWidth, p.MaxHeight)
	cw, ch := CanvasSize(w, h, p.Degrees)
	return Layout{
		Width:        w,
		Height:       h,
		CanvasWidth:  cw,
		CanvasHeight: ch,
		Degrees:      p.Degrees,
	}
}
