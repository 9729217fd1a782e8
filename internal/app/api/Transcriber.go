package api

import (
	"context"

	"batch-transcriber/internal/app/model"
)

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcribe(ctx context.Context, file model.AudioFile) (*model.Transcription, error)
}
