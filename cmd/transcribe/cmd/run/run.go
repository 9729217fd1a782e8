package run

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"batch-transcriber/cmd/transcribe/cmd/options"
	"batch-transcriber/internal/app"
	"batch-transcriber/internal/app/batch"
	"batch-transcriber/internal/app/common"
	appconfig "batch-transcriber/internal/app/config"
	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/config"
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Transcribe every accepted audio file in the input directory",
	Long: `Transcribe every accepted audio file in the input directory.

- Files with other extensions are reported and skipped
- The first failing file stops the run; transcripts already written are kept
- Ctrl-C cancels the request in flight`,
	Args: cobra.NoArgs,
	RunE: Run,
}

// Run resolves configuration and credentials, then processes the input directory once.
func Run(cmd *cobra.Command, args []string) error {
	logger, err := common.NewLogger(options.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := appconfig.Resolve(options.ConfigPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		zap.String("provider", cfg.Provider),
		zap.String("input", cfg.InputDirectory),
		zap.String("output", cfg.OutputDirectory),
		zap.Strings("extensions", cfg.AcceptedExtensions))

	keys, err := config.GetAPIKeys()
	if err != nil {
		return err
	}

	progressConfig := batch.ProgressConfig{
		Enabled: batch.ShouldShowProgress(options.Progress),
		Writer:  os.Stderr,
	}

	transcriber, err := app.InitializeBatchTranscriber(cfg, keys, logger, progressConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := transcriber.Run(ctx); err != nil {
		logger.Debug("run aborted", zap.Stringer("kind", apperrors.KindOf(err)), zap.Error(err))
		return err
	}
	return nil
}
