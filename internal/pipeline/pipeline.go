package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/GunmeetS/rotate-resize-image/internal/report"
	"github.com/GunmeetS/rotate-resize-image/resizer"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir    string
	OutputDir   string
	ProfileName string
	Options     resizer.Options
	TargetKB    float64 // > 0 switches to size targeting
	Workers     int
	Verbose     bool
}

// Pipeline resizes every image under a directory.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[rri] "+format+"\n", args...)
	}
}

// Run processes all sources and returns the report. Files are processed
// in parallel; each file's own work stays sequential.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.logf("found %d files", len(sources))

	// Step 2: Process files in parallel.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			p.logf("processing: %s", s.Key)
			results[idx] = processFile(ctx, s, p.cfg)

			e := results[idx].entry
			switch {
			case e.Skipped != "":
				p.logf("skip: %s (%s)", s.Key, e.Skipped)
			case e.Error != "":
				p.logf("error: %s: %s", s.Key, e.Error)
			default:
				p.logf("done: %s -> %s (%d bytes)", s.Key, e.Output.Path, e.Output.Size)
			}
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: Collect results into the report.
	o := p.cfg.Options
	r := report.New(p.cfg.ProfileName, report.Settings{
		MaxWidth:  o.MaxWidth,
		MaxHeight: o.MaxHeight,
		Quality:   o.Quality,
		Format:    string(o.Format),
		Degrees:   o.Degrees,
		TargetKB:  p.cfg.TargetKB,
		Workers:   p.cfg.Workers,
	})
	for _, res := range results {
		r.Entries[res.key] = res.entry
	}
	r.ComputeStats()

	// Partial failures are reported, not fatal, unless nothing worked.
	if r.Stats.Failed > 0 && r.Stats.Processed == 0 && r.Stats.Skipped == 0 {
		return r, fmt.Errorf("all %d files failed to process", r.Stats.Failed)
	}
	return r, nil
}
