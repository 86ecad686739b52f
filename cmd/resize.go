package cmd

import (
	"fmt"

	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

var (
	resizeFlags  imageFlags
	resizeOutput string
)

var resizeCmd = &cobra.Command{
	Use:   "resize <image>",
	Short: "Fit an image into a box, rotate it and encode it",
	Long: `Scales the image down (never up) to fit --max-width x --max-height,
rotates it clockwise by --degrees onto a canvas that holds the result,
and encodes it at --quality.

Without -o the result is printed to stdout as a data URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runResize,
}

func init() {
	resizeFlags.register(resizeCmd, false)
	resizeCmd.Flags().StringVarP(&resizeOutput, "out", "o", "", "output file (default: data URL on stdout)")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(c *cobra.Command, args []string) error {
	_, opts, err := resizeFlags.resolve(c, resizeOutput)
	if err != nil {
		return err
	}
	if v := opts.Validate(); !v.Valid {
		return fmt.Errorf("invalid options: %s", v.Error)
	}

	f, err := openImage(args[0])
	if err != nil {
		return err
	}

	img, err := resizer.ResizeImage(c.Context(), f, opts)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	logVerbose("output: %dx%d %s, %s", img.Width, img.Height, img.Format, formatBytes(img.Size()))

	return emit(c, img, resizeOutput)
}
