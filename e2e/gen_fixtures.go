//go:build ignore

// gen_fixtures writes a directory of sample inputs for "rri batch".
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	must(os.MkdirAll(filepath.Join(dir, "photos"), 0o755))

	// Landscape and portrait photos exercise both fit axes.
	save(filepath.Join(dir, "photos", "landscape.jpg"), stripes(1600, 1200), encodeJPEG)
	save(filepath.Join(dir, "photos", "portrait.jpg"), stripes(900, 1600), encodeJPEG)

	// Transparency shows how rotation corners are filled per format.
	save(filepath.Join(dir, "badge.png"), disc(400), encodePNG)

	// Decoded through x/image.
	save(filepath.Join(dir, "scan.bmp"), stripes(300, 200), encodeBMP)

	// Not an image: batch reports it as skipped.
	must(os.WriteFile(filepath.Join(dir, "invoice.pdf"), []byte("%PDF-1.4\n%%EOF\n"), 0o644))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

func stripes(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 160, A: 255}
			if (x/40+y/40)%2 == 0 {
				c.B = 40
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func disc(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-r, y-r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{R: 30, G: 120, B: 220, A: 255})
			}
		}
	}
	return img
}

func encodeJPEG(f *os.File, img image.Image) error {
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }

func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func save(path string, img image.Image, enc func(*os.File, image.Image) error) {
	f, err := os.Create(path)
	must(err)
	defer f.Close()
	must(enc(f, img))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
