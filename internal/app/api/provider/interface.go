package provider

import (
	"batch-transcriber/internal/app/api"
)

// TranscriptionProvider is a Transcriber that can describe and check itself.
type TranscriptionProvider interface {
	api.Transcriber

	// Name returns the registry key, e.g. "deepgram".
	Name() string

	// ValidateConfiguration checks credentials and settings before the first request.
	ValidateConfiguration() error
}
