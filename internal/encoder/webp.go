package encoder

import (
	"bytes"
	"image"
	"sync"

	"github.com/gen2brain/webp"
	"github.com/pkg/errors"
)

// webpMethod trades encode time for size (0=fast, 6=slowest).
const webpMethod = 4

// WebPEncoder encodes lossy WebP through libwebp, loaded dynamically
// or run as WASM when no shared library is installed.
type WebPEncoder struct {
	once      sync.Once
	available bool
}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) MIMEType() string  { return "image/webp" }
func (e *WebPEncoder) Extension() string { return "webp" }
func (e *WebPEncoder) Lossy() bool       { return true }

// Available probes the runtime once by encoding a single pixel.
func (e *WebPEncoder) Available() bool {
	e.once.Do(func() {
		probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		var buf bytes.Buffer
		e.available = webp.Encode(&buf, probe, webp.Options{Quality: 50, Method: 0}) == nil
	})
	return e.available
}

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, errors.New("webp encoder runtime not available")
	}

	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	err := webp.Encode(&buf, img, webp.Options{
		Quality: clampQuality(quality),
		Method:  webpMethod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "webp")
	}
	return buf.Bytes(), nil
}
