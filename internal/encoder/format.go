package encoder

import "strings"

// Formats lists the supported output formats in priority order.
var Formats = []string{"jpeg", "png", "webp"}

// Normalize maps a format name, extension or MIME type onto one of
// Formats. The second result is false for anything unsupported.
func Normalize(format string) (string, bool) {
	f := strings.ToLower(strings.TrimSpace(format))
	f = strings.TrimPrefix(f, "image/")
	f = strings.TrimPrefix(f, ".")

	switch f {
	case "jpeg", "jpg", "pjpeg":
		return "jpeg", true
	case "png":
		return "png", true
	case "webp":
		return "webp", true
	default:
		return "", false
	}
}
