package cli

import (
	"github.com/spf13/cobra"

	"github.com/srtgen/srtgen/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtgen",
	Short: "Batch subtitle generator for video files",
	Long: `Srtgen transcribes batches of video files into SRT subtitle files.

It supports word-level output (caption lines packed under a character
budget from per-word timestamps) and sentence-level output (one caption
per recognized speech segment), in any combination.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
