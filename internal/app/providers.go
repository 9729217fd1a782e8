package app

import (
	"io"
	"os"
	"time"

	"batch-transcriber/internal/app/api"
	"batch-transcriber/internal/app/api/provider"
	"batch-transcriber/internal/app/audio"
	appconfig "batch-transcriber/internal/app/config"
	envconfig "batch-transcriber/internal/config"

	// Register transcription providers
	_ "batch-transcriber/internal/app/api/deepgram"
	_ "batch-transcriber/internal/app/api/openai/whisper"
)

// provideSettings resolves the credential for the configured provider; a missing key fails here.
func provideSettings(cfg *appconfig.BatchConfig, keys *envconfig.APIKeys) (provider.Settings, error) {
	apiKey, err := envconfig.RequireAPIKey(keys, cfg.Provider)
	if err != nil {
		return provider.Settings{}, err
	}

	options := provider.DefaultOptions()
	options.Model = cfg.Model
	if cfg.Language != "" {
		options.Language = cfg.Language
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = envconfig.DefaultBaseURL(cfg.Provider)
	}

	return provider.Settings{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Options: options,
	}, nil
}

func provideTranscriber(cfg *appconfig.BatchConfig, settings provider.Settings) (api.Transcriber, error) {
	return provider.NewProvider(cfg.Provider, settings)
}

// provideDurationReader uses ffprobe from PATH
func provideDurationReader() audio.DurationReader {
	return audio.NewFFProbeReader()
}

// provideConsole is where the run report is printed
func provideConsole() io.Writer {
	return os.Stdout
}
