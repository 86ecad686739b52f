// Package validate checks uploads and resize options before any decoding.
// Validators are pure and never return errors; callers branch on Result.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxFileSize is the largest accepted upload, in bytes.
const MaxFileSize = 10 * 1024 * 1024

// SupportedTypes lists the accepted MIME types.
var SupportedTypes = []string{"image/jpeg", "image/png", "image/webp", "image/bmp", "image/gif"}

// Result is the outcome of a validation.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func ok() Result { return Result{Valid: true} }

func fail(format string, args ...any) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// File checks a file's declared MIME type and its size in bytes.
func File(mimeType string, size int64) Result {
	supported := false
	for _, t := range SupportedTypes {
		if mimeType == t {
			supported = true
			break
		}
	}
	if !supported {
		return fail("Invalid file type: %s. Supported types: %s",
			mimeType, strings.Join(SupportedTypes, ", "))
	}

	if size > MaxFileSize {
		return fail("File too large: %.2fMB. Maximum allowed: 10MB", float64(size)/1024/1024)
	}

	return ok()
}

// Options checks a loosely typed options bag, as decoded from JSON or
// flags. maxWidth and maxHeight must be present and positive; quality,
// when present, must lie in [0,1].
func Options(opts map[string]any) Result {
	w, wok := number(opts["maxWidth"])
	h, hok := number(opts["maxHeight"])

	if missing(opts["maxWidth"], w, wok) || missing(opts["maxHeight"], h, hok) {
		return fail("maxWidth and maxHeight are required")
	}
	if !wok || !hok || w <= 0 || h <= 0 {
		return fail("maxWidth and maxHeight must be positive numbers")
	}

	if raw, present := opts["quality"]; present && raw != nil {
		q, qok := number(raw)
		if !qok || q < 0 || q > 1 {
			return fail("quality must be between 0 and 1")
		}
	}

	return ok()
}

// Dimensions applies the same checks as Options to typed values.
func Dimensions(maxWidth, maxHeight int, quality float64) Result {
	return Options(map[string]any{
		"maxWidth":  maxWidth,
		"maxHeight": maxHeight,
		"quality":   quality,
	})
}

// missing reports whether a value counts as absent: nil, empty, zero or NaN.
func missing(raw any, n float64, isNumber bool) bool {
	if raw == nil {
		return true
	}
	if s, isString := raw.(string); isString && strings.TrimSpace(s) == "" {
		return true
	}
	return isNumber && (n == 0 || math.IsNaN(n))
}

// number converts the numeric shapes an options bag may carry.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
