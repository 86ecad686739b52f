package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered input file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is the entry key: relpath without extension, or the full
	// relpath when another source shares that key.
	Key string
	// Size is the file size in bytes.
	Size int64
}

// candidateExtensions lists extensions picked up by the scan. Files of
// unsupported types are still scanned so validation can report them.
var candidateExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".pdf":  true,
	".heic": true,
	".avif": true,
}

// ScanImages walks the input directory and returns all candidate sources.
// Hidden directories and the output directory are skipped.
func ScanImages(inputDir, skipDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != inputDir && (strings.HasPrefix(info.Name(), ".") || path == skipDir) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !candidateExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		// Key: relative path without extension, using forward slashes.
		key := filepath.ToSlash(strings.TrimSuffix(relPath, filepath.Ext(relPath)))

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     key,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// photo.png and photo.jpg share a key; fall back to the full
	// relative path for every source in such a group.
	seen := make(map[string]int, len(sources))
	for _, s := range sources {
		seen[s.Key]++
	}
	for i := range sources {
		if seen[sources[i].Key] > 1 {
			sources[i].Key = sources[i].RelPath
		}
	}
	return sources, nil
}
