package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <image>",
	Short: "Print the dimensions, size and type of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(c *cobra.Command, args []string) error {
	f, err := resizer.OpenFile(args[0])
	if err != nil {
		return err
	}

	info, err := resizer.GetImageInfo(c.Context(), f)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	w := c.OutOrStdout()
	if infoJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(w, "  File:   %s\n", f.Name)
	fmt.Fprintf(w, "  Type:   %s\n", info.Type)
	fmt.Fprintf(w, "  Size:   %.2f KB\n", info.SizeKB)
	fmt.Fprintf(w, "  Pixels: %dx%d\n", info.Width, info.Height)
	return nil
}
