package resizer

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is an in-memory upload: its bytes and declared MIME type.
type File struct {
	Name string
	Type string
	Data []byte
}

// Size returns the file size in bytes.
func (f *File) Size() int64 { return int64(len(f.Data)) }

// SizeKB returns the file size in kilobytes (1024 bytes).
func (f *File) SizeKB() float64 { return float64(len(f.Data)) / 1024 }

// NewFile wraps bytes already in memory. An empty mimeType is sniffed
// from the content.
func NewFile(name, mimeType string, data []byte) *File {
	if mimeType == "" {
		mimeType = DetectType(name, data)
	}
	return &File{Name: name, Type: mimeType, Data: data}
}

// ReadFile reads r fully into a File. Read failures are ErrRead.
func ReadFile(r io.Reader, name, mimeType string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, name, err)
	}
	return NewFile(name, mimeType, data), nil
}

// OpenFile reads a file from disk. Its type is sniffed from the content,
// or from the extension when sniffing is inconclusive.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return NewFile(filepath.Base(path), "", data), nil
}

// DetectType guesses the MIME type of data, falling back to the name's
// extension and then to application/octet-stream.
func DetectType(name string, data []byte) string {
	sniffed := http.DetectContentType(data)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	if strings.HasPrefix(sniffed, "image/") || sniffed == "application/pdf" {
		return sniffed
	}

	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		if i := strings.IndexByte(byExt, ';'); i >= 0 {
			byExt = byExt[:i]
		}
		return byExt
	}
	return sniffed
}
