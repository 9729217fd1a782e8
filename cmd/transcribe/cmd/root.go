package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"batch-transcriber/cmd/transcribe/cmd/config"
	"batch-transcriber/cmd/transcribe/cmd/options"
	"batch-transcriber/cmd/transcribe/cmd/run"
	"batch-transcriber/cmd/transcribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Batch transcribe a directory of audio files with Deepgram",
	Long: `Batch transcribe a directory of audio files with Deepgram.

- Every .mp3, .wav and .m4a file in the input directory is sent for transcription
- Each transcript is appended to <name>_transcript.txt in the output directory
- Estimated cost and request time are reported per file and for the whole run

Running without a subcommand is the same as "transcribe run".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE:          run.Run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&options.ConfigPath, "config", "",
		"config file (default is ./transcribe.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&options.Progress, "progress", false, "always draw a progress bar on stderr")
}
