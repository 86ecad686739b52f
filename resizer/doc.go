// Package resizer resizes, rotates and compresses images in memory.
//
// ResizeImage fits an image into a bounding box (never enlarging it),
// optionally rotates it, and encodes it as JPEG, PNG or WebP at a given
// quality. ResizeToTargetSize searches the quality setting for an output
// close to a size in KB. ValidateFile and ValidateOptions check uploads
// and options before any decoding happens.
//
//	f, err := resizer.OpenFile("photo.jpg")
//	if err != nil {
//		return err
//	}
//	out, err := resizer.ResizeImage(ctx, f, resizer.Options{MaxWidth: 800, MaxHeight: 600, Degrees: 90})
//	if err != nil {
//		return err
//	}
//	fmt.Println(out.DataURL())
//
// Results are never written anywhere; EncodedImage holds the bytes.
package resizer
