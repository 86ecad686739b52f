package cmd

import (
	"fmt"

	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

var validateFlags imageFlags

var validateCmd = &cobra.Command{
	Use:   "validate <image>",
	Short: "Check an image and resize options without processing",
	Long: `Runs the file check (type and size) and the options check
(positive box, quality within 0-1). Exits non-zero if either fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateFlags.register(validateCmd, false)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(c *cobra.Command, args []string) error {
	_, opts, err := validateFlags.resolve(c, "")
	if err != nil {
		return err
	}

	f, err := resizer.OpenFile(args[0])
	if err != nil {
		return err
	}

	checks := []struct {
		name   string
		result resizer.ValidationResult
	}{
		{"file", resizer.ValidateFile(f)},
		{"options", opts.Validate()},
	}

	w := c.OutOrStdout()
	var failed int
	for _, ch := range checks {
		if ch.result.Valid {
			fmt.Fprintf(w, "  ✓ %s ok\n", ch.name)
			continue
		}
		failed++
		fmt.Fprintf(w, "  ✗ %s: %s\n", ch.name, ch.result.Error)
	}

	if failed > 0 {
		return fmt.Errorf("validation failed with %d errors", failed)
	}
	return nil
}
