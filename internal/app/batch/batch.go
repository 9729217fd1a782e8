package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"batch-transcriber/internal/app/api"
	"batch-transcriber/internal/app/audio"
	appconfig "batch-transcriber/internal/app/config"
	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/export"
	"batch-transcriber/internal/app/metrics"
	"batch-transcriber/internal/app/model"
	"batch-transcriber/internal/app/util/files"
)

// BatchTranscriber transcribes every accepted file of the input directory, one at a time.
type BatchTranscriber struct {
	config      *appconfig.BatchConfig
	transcriber api.Transcriber
	durations   audio.DurationReader
	metrics     *metrics.RunMetrics
	progress    *ProgressManager
	logger      *zap.Logger
	out         io.Writer
	report      []export.Row

	now func() time.Time
}

func NewBatchTranscriber(
	config *appconfig.BatchConfig,
	transcriber api.Transcriber,
	durations audio.DurationReader,
	runMetrics *metrics.RunMetrics,
	progress *ProgressManager,
	logger *zap.Logger,
	out io.Writer,
) *BatchTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	return &BatchTranscriber{
		config:      config,
		transcriber: transcriber,
		durations:   durations,
		metrics:     runMetrics,
		progress:    progress,
		logger:      logger,
		out:         out,
		now:         time.Now,
	}
}

// DiscoverFiles lists inputDir and splits its entries into accepted files and skipped ones,
// both in listing order. Directories are always skipped.
func DiscoverFiles(inputDir string, accepted func(ext string) bool) ([]model.AudioFile, []model.AudioFile, error) {
	entries, err := files.ListDirectory(inputDir)
	if err != nil {
		return nil, nil, err
	}

	eligible, skipped := lo.FilterReject(entries, func(f model.AudioFile, _ int) bool {
		return isEligible(f, accepted)
	})
	return eligible, skipped, nil
}

func isEligible(f model.AudioFile, accepted func(ext string) bool) bool {
	return !f.IsDir && accepted(f.Extension)
}

// absPath returns the absolute form of path, or path itself when it cannot be resolved.
func absPath(path string) string {
	if abs, err := files.GetAbsolutePath(path); err == nil {
		return abs
	}
	return path
}

// Run processes the input directory and prints the report. The first failure aborts the
// run; transcripts already written stay on disk.
func (b *BatchTranscriber) Run(ctx context.Context) (*RunStatistics, error) {
	logger := b.logger.With(zap.String("run_id", uuid.NewString()))
	stats := &RunStatistics{}
	b.report = nil

	defer b.writeArtifacts(logger)

	for _, dir := range []string{b.config.InputDirectory, b.config.OutputDirectory} {
		if err := files.CheckAndCreateDirectory(dir); err != nil {
			return stats, err
		}
	}

	fmt.Fprintln(b.out, Separator)

	entries, err := files.ListDirectory(b.config.InputDirectory)
	if err != nil {
		return stats, err
	}
	eligible := lo.CountBy(entries, func(f model.AudioFile) bool {
		return isEligible(f, b.config.IsAccepted)
	})

	logger.Info("starting batch",
		zap.String("input", absPath(b.config.InputDirectory)),
		zap.String("output", absPath(b.config.OutputDirectory)),
		zap.Int("files", eligible),
		zap.Int("skipped", len(entries)-eligible))

	bar := b.progress.CreateBar(eligible, "Transcribing")
	defer b.progress.Wait()

	for _, file := range entries {
		if !isEligible(file, b.config.IsAccepted) {
			fmt.Fprintf(b.out, "%s has an unsupported file extension. Skipping...\n", file.Name)
			b.metrics.ObserveSkip()
			continue
		}
		if err := ctx.Err(); err != nil {
			bar.Abort()
			return stats, apperrors.Wrap(err, apperrors.KindService, "run cancelled")
		}

		elapsed, err := b.processFile(ctx, logger, stats, file)
		if err != nil {
			bar.Abort()
			logger.Error("aborting batch", zap.String("file", file.Name), zap.Error(err))
			return stats, err
		}
		bar.Increment(elapsed)
	}

	fmt.Fprintf(b.out, "\nFinished processing %d audio files.\n", stats.TranscriptionCount)
	fmt.Fprintf(b.out, "Total cost: ~$%s\n", FormatCost(stats.TotalCost))
	fmt.Fprintf(b.out, "Total time: %s\n", FormatDuration(stats.TotalTime))
	fmt.Fprintln(b.out, Separator)

	logger.Info("batch finished",
		zap.Int("count", stats.TranscriptionCount),
		zap.Float64("cost", stats.TotalCost),
		zap.Float64("seconds", stats.TotalTime))
	return stats, nil
}

func (b *BatchTranscriber) processFile(ctx context.Context, logger *zap.Logger, stats *RunStatistics, file model.AudioFile) (time.Duration, error) {
	fmt.Fprintln(b.out, "Requesting transcript...")

	start := b.now()
	result, err := b.transcriber.Transcribe(ctx, file)
	elapsed := b.now().Sub(start)
	if err != nil {
		return elapsed, apperrors.Ensure(err, apperrors.KindService, "transcription of "+file.Name+" failed")
	}

	minutes, err := audio.DurationMinutes(b.durations, file.FullPath)
	if err != nil {
		return elapsed, apperrors.Ensure(err, apperrors.KindMetadata, "duration of "+file.Name+" unavailable")
	}

	seconds := elapsed.Seconds()
	cost := EstimateCost(minutes, b.config.CostPerMinute)
	outputPath := files.TranscriptPath(b.config.OutputDirectory, file)

	if err := WriteOutput(outputPath, RenderTranscript(result, cost, seconds)); err != nil {
		return elapsed, err
	}

	stats.Record(cost, seconds)
	b.metrics.ObserveTranscription(cost, seconds, minutes)
	b.report = append(b.report, export.Row{
		File:           file.Name,
		Output:         outputPath,
		AudioMinutes:   minutes,
		Cost:           cost,
		RequestSeconds: seconds,
		Sentences:      result.SentenceCount(),
		CompletedAt:    start.Add(elapsed),
	})

	logger.Debug("transcript saved",
		zap.String("file", file.Name),
		zap.String("output", outputPath),
		zap.Int("sentences", result.SentenceCount()),
		zap.Float64("minutes", minutes),
		zap.Duration("elapsed", elapsed))

	fmt.Fprintf(b.out, "Transcript #%d for '%s' has been saved. Cost: ~$%s Time taken: %s\n",
		stats.TranscriptionCount, file.Name, FormatCost(cost), FormatDuration(seconds))
	return elapsed, nil
}

// writeArtifacts exports the metrics textfile and the xlsx report when configured. Both are
// written even for an aborted run and cover the files saved so far.
func (b *BatchTranscriber) writeArtifacts(logger *zap.Logger) {
	if err := b.metrics.WriteTextfile(b.config.MetricsTextfile); err != nil {
		logger.Warn("failed to write metrics textfile",
			zap.String("path", b.config.MetricsTextfile), zap.Error(err))
	}

	if b.config.ReportFile == "" {
		return
	}
	if err := export.ToExcel(b.report, b.config.ReportFile); err != nil {
		logger.Warn("failed to write report", zap.String("path", b.config.ReportFile), zap.Error(err))
		return
	}
	logger.Info("report written", zap.String("path", b.config.ReportFile), zap.Int("rows", len(b.report)))
}
