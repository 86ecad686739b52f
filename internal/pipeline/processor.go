package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GunmeetS/rotate-resize-image/internal/hasher"
	"github.com/GunmeetS/rotate-resize-image/internal/report"
	"github.com/GunmeetS/rotate-resize-image/resizer"
)

// processResult holds the result of processing a single source file.
type processResult struct {
	key   string
	entry report.Entry
}

// processFile handles one source: read, validate, resize, write.
// Failures are recorded on the entry rather than returned.
func processFile(ctx context.Context, src Source, cfg Config) processResult {
	result := processResult{key: src.Key}
	result.entry.Source = report.SourceInfo{Path: src.RelPath, Size: src.Size}

	f, err := resizer.OpenFile(src.AbsPath)
	if err != nil {
		result.entry.Error = err.Error()
		return result
	}
	result.entry.Source.Type = f.Type

	if v := resizer.ValidateFile(f); !v.Valid {
		result.entry.Skipped = v.Error
		return result
	}

	info, err := resizer.GetImageInfo(ctx, f)
	if err != nil {
		result.entry.Error = err.Error()
		return result
	}
	result.entry.Source.Width = info.Width
	result.entry.Source.Height = info.Height

	var (
		out        *resizer.EncodedImage
		iterations int
		ratio      float64
	)
	if cfg.TargetKB > 0 {
		res, err := resizer.ResizeToTargetSize(ctx, f, cfg.TargetKB, cfg.Options)
		if err != nil {
			result.entry.Error = err.Error()
			return result
		}
		out, iterations, ratio = res.Image, res.Iterations, res.CompressionRatio
	} else {
		out, err = resizer.ResizeImage(ctx, f, cfg.Options)
		if err != nil {
			result.entry.Error = err.Error()
			return result
		}
		if out.Size() > 0 {
			ratio = float64(f.Size()) / float64(out.Size())
		}
	}

	digest := out.Digest()

	// Build filename: key.WxH.digest.ext
	keyDir := filepath.Dir(src.Key)
	fileName := fmt.Sprintf("%s.%dx%d.%s.%s",
		filepath.Base(src.Key), out.Width, out.Height, hasher.Short(digest), out.Extension)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		result.entry.Error = fmt.Sprintf("create dir for %s: %v", relPath, err)
		return result
	}
	if err := os.WriteFile(outPath, out.Data, 0o644); err != nil {
		result.entry.Error = fmt.Sprintf("write %s: %v", relPath, err)
		return result
	}

	result.entry.Output = &report.Output{
		Format:           string(out.Format),
		Width:            out.Width,
		Height:           out.Height,
		Size:             out.Size(),
		Quality:          out.Quality,
		Iterations:       iterations,
		CompressionRatio: ratio,
		Digest:           digest,
		Path:             relPath,
	}
	return result
}
