package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/GunmeetS/rotate-resize-image/internal/pipeline"
	"github.com/GunmeetS/rotate-resize-image/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFlags   imageFlags
	batchOutDir  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Resize every image in a directory and write a report",
	Long: `Scans the input directory for images, validates each one, and resizes
it with the selected profile (or searches quality when --target-kb is set).
Files are processed in parallel.

Output filenames are content-addressed: <key>.<w>x<h>.<digest>.<ext>
A summary of every file is written to rri.report.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchFlags.register(batchCmd, true)
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./rri_out", "output directory")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(c *cobra.Command, args []string) error {
	start := time.Now()

	// Resolve absolute paths.
	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof, opts, err := batchFlags.resolve(c, "")
	if err != nil {
		return err
	}
	if v := opts.Validate(); !v.Valid {
		return fmt.Errorf("invalid options: %s", v.Error)
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:    absInput,
		OutputDir:   absOutput,
		ProfileName: prof.Name,
		Options:     opts,
		TargetKB:    prof.TargetKB,
		Workers:     batchWorkers,
		Verbose:     verbose,
	})

	r, err := p.Run(c.Context())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	reportPath := filepath.Join(absOutput, report.FileName)
	if err := report.WriteJSON(r, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printBatchReport(c.OutOrStdout(), r, time.Since(start))
	return nil
}

func printBatchReport(w io.Writer, r *report.Report, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║               rri batch complete                 ║")
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	s := r.Stats
	ratio := float64(0)
	if s.TotalInputBytes > 0 {
		ratio = float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
	}

	fmt.Fprintf(w, "  Files:       %d\n", s.TotalFiles)
	fmt.Fprintf(w, "  Processed:   %d\n", s.Processed)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "  Skipped:     %d (failed validation)\n", s.Skipped)
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "  Failed:      %d\n", s.Failed)
	}
	fmt.Fprintf(w, "  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Fprintf(w, "  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Fprintf(w, "  Ratio:       %.1f%% of original\n", ratio)
	fmt.Fprintf(w, "  Workers:     %d\n", r.Settings.Workers)
	fmt.Fprintf(w, "  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	// Top 10 heaviest inputs.
	type fileSize struct {
		key        string
		inputSize  int64
		outputSize int64
	}
	var items []fileSize
	for key, e := range r.Entries {
		if e.Output == nil {
			continue
		}
		items = append(items, fileSize{key, e.Source.Size, e.Output.Size})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].inputSize > items[j].inputSize
	})
	if n := min(len(items), 10); n > 0 {
		fmt.Fprintf(w, "  Top %d heaviest (original → output):\n", n)
		for _, it := range items[:n] {
			saved := float64(0)
			if it.inputSize > 0 {
				saved = (1 - float64(it.outputSize)/float64(it.inputSize)) * 100
			}
			fmt.Fprintf(w, "    %-40s %8s → %8s  (−%.0f%%)\n",
				truncKey(it.key, 40),
				formatBytes(it.inputSize),
				formatBytes(it.outputSize),
				saved,
			)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  Report:      %s\n", report.FileName)
	fmt.Fprintln(w)
}
