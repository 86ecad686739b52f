package encoder

import (
	"fmt"
	"strings"
)

// Registry holds the output encoders keyed by format name.
type Registry struct {
	encoders map[string]Encoder
	fallback Encoder
}

// NewRegistry creates a registry with every supported output encoder.
// Availability is checked lazily on Get, since probing WebP loads a runtime.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	png := &PNGEncoder{}
	all := []Encoder{
		&JPEGEncoder{},
		png,
		&WebPEncoder{},
	}
	for _, enc := range all {
		r.encoders[enc.Format()] = enc
	}
	r.fallback = png

	return r
}

// Get returns an available encoder for the given format, or nil.
func (r *Registry) Get(format string) Encoder {
	name, ok := Normalize(format)
	if !ok {
		return nil
	}
	enc := r.encoders[name]
	if enc == nil || !enc.Available() {
		return nil
	}
	return enc
}

// Resolve returns the encoder for format, falling back to PNG when the
// format is unknown or its encoder is unavailable.
func (r *Registry) Resolve(format string) Encoder {
	if enc := r.Get(format); enc != nil {
		return enc
	}
	return r.fallback
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range Formats {
		if r.Get(f) != nil {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
