package resizer

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noise returns a w×h image with a gradient and pseudo-random detail,
// which keeps JPEG sizes well above trivial.
func noise(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	seed := uint32(1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seed = seed*1664525 + 1013904223
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(seed >> 24),
				B: uint8(y * 255 / h),
				A: 255,
			})
		}
	}
	return img
}

func jpegFile(t *testing.T, img image.Image) *File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return NewFile("photo.jpg", "", buf.Bytes())
}

func pngFile(t *testing.T, img image.Image) *File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return NewFile("image.png", "", buf.Bytes())
}

func decodedSize(t *testing.T, out *EncodedImage) image.Point {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	return img.Bounds().Size()
}

func TestResizeImageFitsBox(t *testing.T) {
	f := jpegFile(t, noise(1600, 1200))
	assert.Equal(t, "image/jpeg", f.Type)

	out, err := ResizeImage(context.Background(), f, Options{MaxWidth: 800, MaxHeight: 600})
	require.NoError(t, err)

	assert.Equal(t, JPEG, out.Format)
	assert.Equal(t, "image/jpeg", out.MIMEType)
	assert.Equal(t, DefaultQuality, out.Quality)
	assert.Equal(t, 800, out.Width)
	assert.Equal(t, 600, out.Height)
	assert.Equal(t, image.Pt(800, 600), decodedSize(t, out))
}

func TestResizeImageRotated(t *testing.T) {
	f := jpegFile(t, noise(1600, 1200))

	out, err := ResizeImage(context.Background(), f, Options{MaxWidth: 800, MaxHeight: 600, Degrees: 90})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(600, 800), decodedSize(t, out))

	out, err = ResizeImage(context.Background(), f, Options{MaxWidth: 800, MaxHeight: 600, Degrees: 180})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(800, 600), decodedSize(t, out))
}

func TestResizeImageNeverUpscales(t *testing.T) {
	f := pngFile(t, noise(120, 80))

	out, err := ResizeImage(context.Background(), f, Options{MaxWidth: 4000, MaxHeight: 4000, Format: PNG})
	require.NoError(t, err)
	assert.Equal(t, PNG, out.Format)
	assert.Equal(t, image.Pt(120, 80), decodedSize(t, out))
}

func TestResizeImageQualityChangesSize(t *testing.T) {
	f := jpegFile(t, noise(400, 300))

	low, err := ResizeImage(context.Background(), f, Options{MaxWidth: 400, MaxHeight: 300, Quality: 0.1})
	require.NoError(t, err)
	high, err := ResizeImage(context.Background(), f, Options{MaxWidth: 400, MaxHeight: 300, Quality: 0.95})
	require.NoError(t, err)

	assert.Less(t, low.Size(), high.Size())
}

func TestResizeImageErrors(t *testing.T) {
	ctx := context.Background()

	_, err := ResizeImage(ctx, NewFile("bad.jpg", "image/jpeg", []byte("not really a jpeg")), Options{MaxWidth: 10, MaxHeight: 10})
	assert.ErrorIs(t, err, ErrDecode)

	_, err = ResizeImage(ctx, pngFile(t, noise(2, 1000)), Options{MaxWidth: 100, MaxHeight: 100})
	assert.ErrorIs(t, err, ErrRenderingUnavailable)

	_, err = ResizeImage(ctx, nil, Options{MaxWidth: 100, MaxHeight: 100})
	assert.ErrorIs(t, err, ErrRead)
}

func TestEncodedImageDataURL(t *testing.T) {
	out, err := ResizeImage(context.Background(), pngFile(t, noise(20, 10)), Options{MaxWidth: 20, MaxHeight: 20, Format: PNG})
	require.NoError(t, err)

	url := out.DataURL()
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, out.Data, raw)

	assert.Len(t, out.Digest(), 16)

	var buf bytes.Buffer
	n, err := out.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, out.Size(), n)
}

func TestResizeToTargetSize(t *testing.T) {
	f := jpegFile(t, noise(640, 480))

	res, err := ResizeToTargetSize(context.Background(), f, 40, Options{MaxWidth: 640, MaxHeight: 480, Quality: 0.3})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.LessOrEqual(t, res.Iterations, MaxIterations)
	assert.GreaterOrEqual(t, res.Quality, MinQuality)
	assert.LessOrEqual(t, res.Quality, MaxQuality)
	assert.Equal(t, res.Quality, res.Image.Quality)
	assert.InDelta(t, res.Image.SizeKB(), res.SizeKB, 1e-9)
	assert.InDelta(t, f.SizeKB()/res.SizeKB, res.CompressionRatio, 1e-9)
	assert.Equal(t, image.Pt(640, 480), decodedSize(t, res.Image))

	if res.Iterations < MaxIterations {
		assert.InDelta(t, 40, res.SizeKB, 40*0.05)
	}
}

func TestResizeToTargetSizeUnreachable(t *testing.T) {
	f := jpegFile(t, noise(800, 600))

	// Even the quality floor produces far more than 1KB of noisy JPEG.
	res, err := ResizeToTargetSize(context.Background(), f, 1, Options{MaxWidth: 800, MaxHeight: 600})
	require.NoError(t, err)

	assert.Equal(t, MaxIterations, res.Iterations)
	assert.InDelta(t, MinQuality, res.Quality, 0.001)
	assert.Greater(t, res.SizeKB, 1.05)
	assert.NotNil(t, res.Image)
}

func TestResizeToTargetSizeRotatedWebPFallback(t *testing.T) {
	f := jpegFile(t, noise(300, 200))

	res, err := ResizeToTargetSize(context.Background(), f, 5, Options{MaxWidth: 150, MaxHeight: 150, Degrees: 270, Format: WebP})
	require.NoError(t, err)

	// webp when the runtime is present, png otherwise
	assert.Contains(t, []Format{WebP, PNG}, res.Image.Format)
	assert.Equal(t, 100, res.Image.Width)
	assert.Equal(t, 150, res.Image.Height)
}

func TestResizeToTargetSizeErrors(t *testing.T) {
	ctx := context.Background()
	opts := Options{MaxWidth: 100, MaxHeight: 100}

	for _, target := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := ResizeToTargetSize(ctx, jpegFile(t, noise(10, 10)), target, opts)
		assert.ErrorIs(t, err, ErrInvalidTarget, "target=%v", target)
		assert.Nil(t, res, "target=%v", target)
	}

	_, err = ResizeToTargetSize(ctx, NewFile("x.png", "image/png", []byte{1, 2, 3}), 10, opts)
	assert.ErrorIs(t, err, ErrDecode)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ResizeToTargetSize(cancelled, jpegFile(t, noise(10, 10)), 10, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetImageInfo(t *testing.T) {
	f := pngFile(t, noise(321, 123))

	info, err := GetImageInfo(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 321, info.Width)
	assert.Equal(t, 123, info.Height)
	assert.Equal(t, "image/png", info.Type)
	assert.InDelta(t, float64(len(f.Data))/1024, info.SizeKB, 1e-9)

	_, err = GetImageInfo(context.Background(), NewFile("x.bin", "", []byte("zzz")))
	assert.ErrorIs(t, err, ErrDecode)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadFile(t *testing.T) {
	_, err := ReadFile(failingReader{}, "x.jpg", "image/jpeg")
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorContains(t, err, "disk on fire")

	data := pngFile(t, noise(4, 4)).Data
	f, err := ReadFile(bytes.NewReader(data), "a.png", "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.Type)
	assert.Equal(t, int64(len(data)), f.Size())

	f, err = ReadFile(strings.NewReader("%PDF-1.4 ..."), "doc.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", f.Type)

	_, err = OpenFile("/definitely/not/here.png")
	assert.ErrorIs(t, err, ErrRead)
}

func TestValidateFile(t *testing.T) {
	r := ValidateFile(NewFile("doc.pdf", "application/pdf", []byte("%PDF")))
	assert.False(t, r.Valid)
	assert.Contains(t, r.Error, "application/pdf")

	big := NewFile("big.png", "image/png", make([]byte, MaxFileSize+1))
	r = ValidateFile(big)
	assert.False(t, r.Valid)
	assert.Contains(t, r.Error, "File too large")

	assert.True(t, ValidateFile(pngFile(t, noise(4, 4))).Valid)
	assert.Len(t, SupportedTypes(), 5)
}

func TestValidateOptions(t *testing.T) {
	r := ValidateOptions(map[string]any{"maxWidth": 0, "maxHeight": 100})
	assert.False(t, r.Valid)
	assert.Equal(t, r, ValidateOptions(map[string]any{"maxWidth": 0, "maxHeight": 100}))

	assert.True(t, ValidateOptions(map[string]any{"maxWidth": 800, "maxHeight": 600, "quality": 0.9}).Valid)

	assert.True(t, Options{MaxWidth: 10, MaxHeight: 10}.Validate().Valid)
	assert.False(t, Options{MaxWidth: 10, MaxHeight: 10, Quality: 3}.Validate().Valid)
	assert.False(t, Options{MaxWidth: -1, MaxHeight: 10}.Validate().Valid)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("image/webp")
	require.NoError(t, err)
	assert.Equal(t, WebP, f)
	assert.Equal(t, "image/webp", f.MIMEType())

	f, err = ParseFormat("JPG")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)

	_, err = ParseFormat("avif")
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions(640, 480)
	assert.Equal(t, 0.9, o.Quality)
	assert.Equal(t, JPEG, o.Format)
	assert.True(t, o.Validate().Valid)
}

func TestResizeToTargetSizePNGEncodesOnce(t *testing.T) {
	f := jpegFile(t, noise(200, 100))

	res, err := ResizeToTargetSize(context.Background(), f, 1, Options{MaxWidth: 100, MaxHeight: 100, Format: PNG})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, MaxQuality, res.Quality)
	assert.Equal(t, PNG, res.Image.Format)
	assert.Equal(t, "png", res.Image.Extension)
	assert.InDelta(t, res.Image.SizeKB(), res.SizeKB, 1e-9)
	assert.Positive(t, res.CompressionRatio)
}

func TestEncodedImageExtension(t *testing.T) {
	out, err := ResizeImage(context.Background(), pngFile(t, noise(20, 20)), Options{MaxWidth: 10, MaxHeight: 10})
	require.NoError(t, err)
	assert.Equal(t, JPEG, out.Format)
	assert.Equal(t, "jpg", out.Extension)
}

func TestAvailableFormats(t *testing.T) {
	formats := AvailableFormats()
	assert.Contains(t, formats, JPEG)
	assert.Contains(t, formats, PNG)
	assert.Contains(t, Encoders(), "encoders: jpeg, png")
}

func TestValidateFileNil(t *testing.T) {
	var r ValidationResult
	require.NotPanics(t, func() { r = ValidateFile(nil) })
	assert.False(t, r.Valid)
	assert.Equal(t, "no file", r.Error)
}

func TestZeroQualityMeansDefault(t *testing.T) {
	ctx := context.Background()
	f := jpegFile(t, noise(120, 80))

	zero, err := ResizeImage(ctx, f, Options{MaxWidth: 60, MaxHeight: 60})
	require.NoError(t, err)
	def, err := ResizeImage(ctx, f, Options{MaxWidth: 60, MaxHeight: 60, Quality: DefaultQuality})
	require.NoError(t, err)
	lowest, err := ResizeImage(ctx, f, Options{MaxWidth: 60, MaxHeight: 60, Quality: 0.01})
	require.NoError(t, err)

	assert.Equal(t, def.Data, zero.Data)
	assert.Less(t, lowest.Size(), zero.Size())
}
