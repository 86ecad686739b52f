package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/GunmeetS/rotate-resize-image/resizer"
	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0"
	verbose      bool
	profilesPath string
)

var rootCmd = &cobra.Command{
	Use:   "rri",
	Short: "Resize, rotate and compress images",
	Long: `rri fits images into a bounding box, rotates them onto a canvas
that always contains the result, and encodes them as JPEG, PNG or WebP.

Quality can be set directly or searched for so the output lands near
a target size in kilobytes. Whole directories can be processed in
parallel with a JSON report of every file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logVerbose("%s", resizer.Encoders())
	},
}

// Execute runs the root command. An interrupt cancels in-flight work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&profilesPath, "profiles", "", "YAML file with extra profiles")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"rri %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[rri] "+format+"\n", args...)
	}
}
