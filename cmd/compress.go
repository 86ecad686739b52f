package cmd

import (
	"fmt"

	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

var (
	compressFlags  imageFlags
	compressOutput string
)

var compressCmd = &cobra.Command{
	Use:   "compress <image>",
	Short: "Resize an image and search for the quality that meets a target size",
	Long: `Resizes like "rri resize", then bisects the quality between 0.1 and 0.9
until the encoded size is within 5% of --target-kb, for at most 10 encodes.
An unreachable target still produces the closest output.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressFlags.register(compressCmd, true)
	compressCmd.Flags().StringVarP(&compressOutput, "out", "o", "", "output file (default: data URL on stdout)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(c *cobra.Command, args []string) error {
	prof, opts, err := compressFlags.resolve(c, compressOutput)
	if err != nil {
		return err
	}
	if prof.TargetKB <= 0 {
		return fmt.Errorf("--target-kb must be positive")
	}
	if v := opts.Validate(); !v.Valid {
		return fmt.Errorf("invalid options: %s", v.Error)
	}

	f, err := openImage(args[0])
	if err != nil {
		return err
	}

	res, err := resizer.ResizeToTargetSize(c.Context(), f, prof.TargetKB, opts)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	summary := fmt.Sprintf("%.1f KB -> %.1f KB (target %.1f KB), quality %.2f, ratio %.2fx, %d iterations",
		f.SizeKB(), res.SizeKB, prof.TargetKB, res.Quality, res.CompressionRatio, res.Iterations)
	if compressOutput != "" {
		fmt.Fprintln(c.OutOrStdout(), summary)
	} else {
		logVerbose("%s", summary)
	}

	return emit(c, res.Image, compressOutput)
}
