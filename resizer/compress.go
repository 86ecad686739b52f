package resizer

import (
	"context"
	"image"
	"math"

	"github.com/GunmeetS/rotate-resize-image/internal/quality"
	"github.com/GunmeetS/rotate-resize-image/internal/transform"
	"github.com/pkg/errors"
)

// Search bounds, re-exported for callers that report on them.
const (
	MinQuality    = quality.MinQuality
	MaxQuality    = quality.MaxQuality
	MaxIterations = quality.MaxIterations
)

// ResizeToTargetSize resizes f like ResizeImage and bisects the quality
// between MinQuality and MaxQuality until the output is within 5% of
// targetKB, or MaxIterations encodes have run. The last encode is
// returned either way; an unreachable target is not an error.
//
// opts.Quality is ignored. The canvas is drawn once; only the encode is
// repeated. Lossless formats such as PNG are encoded once, since quality
// cannot move their size. Any failure aborts the search and is returned
// unchanged. targetKB must be positive and finite.
func ResizeToTargetSize(ctx context.Context, f *File, targetKB float64, opts Options) (*CompressionResult, error) {
	if !(targetKB > 0) || math.IsInf(targetKB, 0) {
		return nil, errors.Wrapf(ErrInvalidTarget, "%v", targetKB)
	}

	canvas, err := render(ctx, f, opts)
	if err != nil {
		return nil, err
	}

	format := opts.format()
	if !engine.Lossy(format) {
		return single(f, canvas, format)
	}

	img, res, err := quality.Search[*EncodedImage](ctx, targetKB, func(q float64) (*EncodedImage, float64, error) {
		out, err := encode(canvas, format, q)
		if err != nil {
			return nil, 0, err
		}
		return out, out.SizeKB(), nil
	})
	if err != nil {
		return nil, err
	}

	return newResult(f, img, res), nil
}

// single encodes once for formats whose size does not depend on quality.
func single(f *File, canvas image.Image, format string) (*CompressionResult, error) {
	img, err := encode(canvas, format, MaxQuality)
	if err != nil {
		return nil, err
	}
	return newResult(f, img, quality.Result{
		Quality:    MaxQuality,
		SizeKB:     img.SizeKB(),
		Iterations: 1,
	}), nil
}

func newResult(f *File, img *EncodedImage, res quality.Result) *CompressionResult {
	result := &CompressionResult{
		Image:      img,
		SizeKB:     res.SizeKB,
		Quality:    res.Quality,
		Iterations: res.Iterations,
	}
	if res.SizeKB > 0 {
		result.CompressionRatio = f.SizeKB() / res.SizeKB
	}
	return result
}

// GetImageInfo reports the dimensions, size and declared type of f
// without decoding its pixels.
func GetImageInfo(ctx context.Context, f *File) (*ImageInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.Wrap(ErrRead, "no file")
	}
	cfg, _, err := transform.DecodeConfig(f.Data)
	if err != nil {
		return nil, err
	}
	return &ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		SizeKB: f.SizeKB(),
		Type:   f.Type,
	}, nil
}
