package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/model"
)

type stubProvider struct {
	name        string
	validateErr error
	settings    Settings
}

func (s *stubProvider) Transcribe(ctx context.Context, file model.AudioFile) (*model.Transcription, error) {
	return model.NewTranscription([]string{"stub"}), nil
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) ValidateConfiguration() error { return s.validateErr }

func TestRegistry(t *testing.T) {
	RegisterProvider("stub-ok", func(settings Settings) (TranscriptionProvider, error) {
		return &stubProvider{name: "stub-ok", settings: settings}, nil
	})
	RegisterProvider("stub-invalid", func(settings Settings) (TranscriptionProvider, error) {
		return &stubProvider{name: "stub-invalid", validateErr: errors.New("api key rejected")}, nil
	})
	RegisterProvider("stub-broken", func(settings Settings) (TranscriptionProvider, error) {
		return nil, errors.New("cannot build")
	})

	providers := ListRegisteredProviders()
	assert.Subset(t, providers, []string{"stub-broken", "stub-invalid", "stub-ok"})
	assert.IsNonDecreasing(t, providers)

	t.Run("creates and passes settings", func(t *testing.T) {
		settings := Settings{APIKey: "key", Options: DefaultOptions()}
		p, err := NewProvider("stub-ok", settings)
		require.NoError(t, err)
		assert.Equal(t, "stub-ok", p.Name())
		assert.Equal(t, settings, p.(*stubProvider).settings)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProvider("nope", Settings{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
		assert.Contains(t, err.Error(), "stub-ok")
	})

	t.Run("validation failure is a config error", func(t *testing.T) {
		_, err := NewProvider("stub-invalid", Settings{})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "api key rejected")
	})

	t.Run("creator failure is a config error", func(t *testing.T) {
		_, err := NewProvider("stub-broken", Settings{})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "en-US", opts.Language)
	assert.True(t, opts.Punctuate)
	assert.True(t, opts.Paragraphs)
	assert.Empty(t, opts.Model)
}

func TestTranscriptionErrorMessage(t *testing.T) {
	err := &TranscriptionError{Code: "server_error", Message: "Deepgram server error", Provider: "deepgram"}
	assert.Equal(t, "deepgram: Deepgram server error", err.Error())
}
