package deepgram

import (
	"batch-transcriber/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createDeepgramProvider)
}

func createDeepgramProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	return NewPrerecordedProvider(Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Timeout: settings.Timeout,
		Options: settings.Options,
	}), nil
}
