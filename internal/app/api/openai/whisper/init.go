package whisper

import (
	"batch-transcriber/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createOpenAIProvider)
}

func createOpenAIProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	return NewRemoteTranscriber(settings), nil
}
