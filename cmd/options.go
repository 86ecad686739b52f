package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/GunmeetS/rotate-resize-image/internal/profile"
	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

// imageFlags are the resize parameters shared by resize, compress,
// validate and batch. A profile supplies defaults; flags set on the
// command line win.
type imageFlags struct {
	profile   string
	maxWidth  int
	maxHeight int
	quality   float64
	degrees   int
	format    string
	targetKB  float64
}

func (f *imageFlags) register(c *cobra.Command, withTarget bool) {
	fs := c.Flags()
	fs.StringVarP(&f.profile, "profile", "p", profile.DefaultName, "resize profile")
	fs.IntVar(&f.maxWidth, "max-width", 0, "maximum width in pixels (0 = profile)")
	fs.IntVar(&f.maxHeight, "max-height", 0, "maximum height in pixels (0 = profile)")
	fs.Float64VarP(&f.quality, "quality", "q", 0, "quality 0-1 (0 = profile)")
	fs.IntVarP(&f.degrees, "degrees", "r", 0, "clockwise rotation in degrees")
	fs.StringVarP(&f.format, "format", "f", "", "output format: jpeg, png or webp (empty = profile)")
	if withTarget {
		fs.Float64Var(&f.targetKB, "target-kb", 0, "target output size in KB (0 = profile)")
	}
}

// loadProfiles returns the built-in presets, merged with --profiles.
func loadProfiles() (profile.Set, error) {
	if profilesPath == "" {
		return profile.Builtin(), nil
	}
	set, err := profile.Load(profilesPath)
	if err != nil {
		return nil, err
	}
	logVerbose("profiles: %s (%s)", profilesPath, strings.Join(set.Names(), ", "))
	return set, nil
}

// resolve merges the selected profile with explicit flags. outPath, when
// set, supplies the format if neither flags nor the profile name one.
func (f *imageFlags) resolve(c *cobra.Command, outPath string) (profile.Profile, resizer.Options, error) {
	set, err := loadProfiles()
	if err != nil {
		return profile.Profile{}, resizer.Options{}, err
	}
	prof := set.Get(f.profile)

	fs := c.Flags()
	if fs.Changed("max-width") {
		prof.MaxWidth = f.maxWidth
	}
	if fs.Changed("max-height") {
		prof.MaxHeight = f.maxHeight
	}
	if fs.Changed("quality") {
		prof.Quality = f.quality
	}
	if fs.Changed("degrees") {
		prof.Degrees = f.degrees
	}
	if fs.Changed("target-kb") {
		prof.TargetKB = f.targetKB
	}
	switch {
	case fs.Changed("format"):
		prof.Format = f.format
	case outPath != "":
		if ext := filepath.Ext(outPath); ext != "" {
			if _, err := resizer.ParseFormat(ext); err == nil {
				prof.Format = ext
			}
		}
	}

	opts := resizer.Options{
		MaxWidth:  prof.MaxWidth,
		MaxHeight: prof.MaxHeight,
		Quality:   prof.Quality,
		Degrees:   prof.Degrees,
	}
	if prof.Format != "" {
		format, err := resizer.ParseFormat(prof.Format)
		if err != nil {
			return profile.Profile{}, resizer.Options{}, err
		}
		opts.Format = format
		if !slices.Contains(resizer.AvailableFormats(), format) {
			logVerbose("%s encoder not available, writing png", format)
		}
	}

	logVerbose("profile: %s (%dx%d, quality=%.2f, format=%s, degrees=%d)",
		prof.Name, opts.MaxWidth, opts.MaxHeight, opts.Quality, opts.Format, opts.Degrees)
	return prof, opts, nil
}

// openImage reads path and rejects files ValidateFile would refuse.
func openImage(path string) (*resizer.File, error) {
	f, err := resizer.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if v := resizer.ValidateFile(f); !v.Valid {
		return nil, fmt.Errorf("%s: %s", path, v.Error)
	}
	logVerbose("input: %s (%s, %s)", path, f.Type, formatBytes(f.Size()))
	return f, nil
}

// emit writes img to outPath, or its data URL to stdout when outPath
// is empty.
func emit(c *cobra.Command, img *resizer.EncodedImage, outPath string) error {
	if outPath == "" {
		fmt.Fprintln(c.OutOrStdout(), img.DataURL())
		return nil
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := img.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logVerbose("wrote %s (%s)", outPath, formatBytes(img.Size()))
	return nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
