//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"batch-transcriber/internal/app/batch"
	appconfig "batch-transcriber/internal/app/config"
	"batch-transcriber/internal/app/metrics"
	envconfig "batch-transcriber/internal/config"
)

func InitializeBatchTranscriber(cfg *appconfig.BatchConfig, keys *envconfig.APIKeys, logger *zap.Logger, progressConfig batch.ProgressConfig) (*batch.BatchTranscriber, error) {
	wire.Build(
		batch.NewBatchTranscriber,
		batch.NewProgressManager,
		metrics.NewRunMetrics,
		provideSettings,
		provideTranscriber,
		provideDurationReader,
		provideConsole,
	)
	return &batch.BatchTranscriber{}, nil
}
