package transform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// halves returns a w×h image, red on the left half and blue on the right.
func halves(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := red
			if x >= w/2 {
				c = blue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderNoRotation(t *testing.T) {
	canvas, l, err := Render(halves(160, 120), Params{MaxWidth: 80, MaxHeight: 60})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 80, 60), canvas.Bounds())
	assert.Equal(t, 80, l.CanvasWidth)
	assert.Equal(t, red, canvas.NRGBAAt(5, 30))
	assert.Equal(t, blue, canvas.NRGBAAt(75, 30))
}

func TestRenderRotate90Clockwise(t *testing.T) {
	canvas, _, err := Render(halves(80, 60), Params{MaxWidth: 200, MaxHeight: 200, Degrees: 90})
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 60, 80), canvas.Bounds())
	// The left (red) edge ends up on top.
	assert.Equal(t, red, canvas.NRGBAAt(30, 2))
	assert.Equal(t, blue, canvas.NRGBAAt(30, 77))
}

func TestRenderRotate270(t *testing.T) {
	canvas, _, err := Render(halves(80, 60), Params{MaxWidth: 200, MaxHeight: 200, Degrees: 270})
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 60, 80), canvas.Bounds())
	assert.Equal(t, blue, canvas.NRGBAAt(30, 2))
	assert.Equal(t, red, canvas.NRGBAAt(30, 77))
}

func TestRenderRotate180(t *testing.T) {
	canvas, _, err := Render(halves(80, 60), Params{MaxWidth: 200, MaxHeight: 200, Degrees: 180})
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 80, 60), canvas.Bounds())
	assert.Equal(t, blue, canvas.NRGBAAt(2, 30))
	assert.Equal(t, red, canvas.NRGBAAt(77, 30))
}

func TestRenderOddAngleClipsCorners(t *testing.T) {
	canvas, _, err := Render(halves(40, 20), Params{MaxWidth: 100, MaxHeight: 100, Degrees: 45})
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 20, 40), canvas.Bounds())
	assert.Equal(t, uint8(0), canvas.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), canvas.NRGBAAt(10, 20).A)
}

func TestRenderCollapsedCanvas(t *testing.T) {
	_, _, err := Render(halves(2, 1000), Params{MaxWidth: 100, MaxHeight: 100})
	assert.ErrorIs(t, err, ErrRenderingUnavailable)
	assert.ErrorContains(t, err, "canvas 0x100")
}

func TestDecode(t *testing.T) {
	img, format, err := Decode(context.Background(), pngBytes(t, halves(10, 8)))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, _, err = Decode(context.Background(), []byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrDecode)

	_, _, err = Decode(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorContains(t, err, "empty input")
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Decode(ctx, pngBytes(t, halves(4, 4)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeConfig(t *testing.T) {
	cfg, format, err := DecodeConfig(pngBytes(t, halves(33, 17)))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 33, cfg.Width)
	assert.Equal(t, 17, cfg.Height)
}

func TestEngineTransform(t *testing.T) {
	e := NewEngine(nil)

	out, err := e.Transform(halves(160, 120), Params{MaxWidth: 80, MaxHeight: 80, Degrees: 90}, "jpeg", 0.8)
	require.NoError(t, err)

	assert.Equal(t, "jpeg", out.Format)
	assert.Equal(t, "image/jpeg", out.MIMEType)
	assert.Equal(t, 60, out.Width)
	assert.Equal(t, 80, out.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(60, 80), decoded.Bounds().Size())
}

func TestEngineUnknownFormatEncodesPNG(t *testing.T) {
	out, err := NewEngine(nil).Transform(halves(20, 20), Params{MaxWidth: 20, MaxHeight: 20}, "image/gif", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "png", out.Format)
	assert.Equal(t, "\x89PNG", string(out.Data[:4]))
}

func TestEngineLossyAndFormats(t *testing.T) {
	e := NewEngine(nil)
	assert.True(t, e.Lossy("jpeg"))
	assert.False(t, e.Lossy("png"))
	assert.False(t, e.Lossy("image/gif"), "unknown formats resolve to png")

	assert.Subset(t, e.Formats(), []string{"jpeg", "png"})
	assert.Contains(t, e.String(), "jpeg, png")

	out, err := e.Encode(halves(4, 4), "jpeg", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "jpg", out.Extension)
}
