// Package quality searches the lossy quality parameter for an encoded
// size close to a target.
package quality

import (
	"context"
	"math"
)

const (
	// MinQuality and MaxQuality bound the bisection interval.
	MinQuality = 0.1
	MaxQuality = 0.9

	// MaxIterations caps the number of encodes per search.
	MaxIterations = 10

	// Tolerance is the accepted distance from the target, as a fraction of it.
	Tolerance = 0.05
)

// EncodeFunc encodes at quality q and reports the result and its size in KB.
type EncodeFunc[T any] func(q float64) (T, float64, error)

// Result summarises a finished search.
type Result struct {
	Quality    float64
	SizeKB     float64
	Iterations int
}

// Search bisects [MinQuality, MaxQuality] until an encode lands within
// Tolerance of targetKB or MaxIterations encodes have run, and returns the
// last encode. A size above the target lowers the upper bound, anything
// else raises the lower bound. The size starts at 0, so at least one
// encode always runs for a positive target.
//
// Encode errors abort the search and are returned unchanged.
func Search[T any](ctx context.Context, targetKB float64, encode EncodeFunc[T]) (T, Result, error) {
	var (
		last   T
		res    = Result{Quality: MaxQuality}
		lo, hi = MinQuality, MaxQuality
	)

	for res.Iterations < MaxIterations && math.Abs(res.SizeKB-targetKB) > targetKB*Tolerance {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, Result{}, err
		}

		q := (lo + hi) / 2
		out, sizeKB, err := encode(q)
		if err != nil {
			var zero T
			return zero, Result{}, err
		}
		last = out
		res.Quality = q
		res.SizeKB = sizeKB

		if sizeKB > targetKB {
			hi = q
		} else {
			lo = q
		}
		res.Iterations++
	}

	return last, res, nil
}
