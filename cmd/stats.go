package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/GunmeetS/rotate-resize-image/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_report>",
	Short: "Display statistics for a batch output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(c *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, report.FileName)
	}

	r, err := report.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(c.OutOrStdout(), r, filepath.Dir(path))
	return nil
}

func printStats(w io.Writer, r *report.Report, baseDir string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Report version:   %d\n", r.Version)
	fmt.Fprintf(w, "  Run:              %s\n", r.RunID)
	fmt.Fprintf(w, "  Generated:        %s\n", r.GeneratedAt)
	fmt.Fprintf(w, "  Profile:          %s\n", r.Profile)
	st := r.Settings
	fmt.Fprintf(w, "  Box:              %dx%d, %s", st.MaxWidth, st.MaxHeight, st.Format)
	if st.TargetKB > 0 {
		fmt.Fprintf(w, ", target %.1f KB", st.TargetKB)
	} else {
		fmt.Fprintf(w, ", quality %.2f", st.Quality)
	}
	if st.Degrees != 0 {
		fmt.Fprintf(w, ", rotated %d°", st.Degrees)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	s := r.Stats
	fmt.Fprintf(w, "  Total files:      %d\n", s.TotalFiles)
	fmt.Fprintf(w, "  Processed:        %d\n", s.Processed)
	fmt.Fprintf(w, "  Skipped:          %d\n", s.Skipped)
	fmt.Fprintf(w, "  Failed:           %d\n", s.Failed)
	fmt.Fprintf(w, "  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Fprintf(w, "  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Fprintf(w, "  Compression:      %.1f%% of original\n", ratio)
	}
	fmt.Fprintln(w)

	// Per-type breakdown of inputs.
	typeStats := map[string]int{}
	for _, e := range r.Entries {
		typeStats[e.Source.Type]++
	}
	var types []string
	for t := range typeStats {
		types = append(types, t)
	}
	sort.Strings(types)
	fmt.Fprintln(w, "  Input types:")
	for _, t := range types {
		fmt.Fprintf(w, "    %-20s %4d files\n", t, typeStats[t])
	}
	fmt.Fprintln(w)

	// Warnings: skipped, failed and missing outputs.
	var keys []string
	for k := range r.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []string
	for _, key := range keys {
		e := r.Entries[key]
		switch {
		case e.Skipped != "":
			warnings = append(warnings, fmt.Sprintf("%q skipped: %s", key, e.Skipped))
		case e.Error != "":
			warnings = append(warnings, fmt.Sprintf("%q failed: %s", key, e.Error))
		case e.Output != nil:
			fi, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(e.Output.Path)))
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%q output missing: %s", key, e.Output.Path))
			} else if fi.Size() != e.Output.Size {
				warnings = append(warnings, fmt.Sprintf("%q size mismatch: report=%d, disk=%d",
					key, e.Output.Size, fi.Size()))
			}
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintf(w, "  Warnings (%d):\n", len(warnings))
		for _, msg := range warnings {
			fmt.Fprintf(w, "    ⚠ %s\n", msg)
		}
		fmt.Fprintln(w)
	}
}
