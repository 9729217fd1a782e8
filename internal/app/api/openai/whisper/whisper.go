package whisper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	openaiclient "batch-transcriber/internal/app/api/openai"
	"batch-transcriber/internal/app/api/provider"
	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/model"
	"batch-transcriber/internal/config"
)

const providerName = "openai"

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client  *openai.Client
	apiKey  string
	baseURL string
	timeout time.Duration
	options provider.TranscriptionOptions
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(settings provider.Settings) *RemoteTranscriber {
	options := settings.Options
	if options.Model == "" {
		options.Model = config.DefaultOpenAIModel
	}
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultOpenAIBaseURL
	}

	return &RemoteTranscriber{
		client:  openaiclient.NewClient(settings.APIKey, baseURL, settings.Timeout),
		apiKey:  settings.APIKey,
		baseURL: baseURL,
		timeout: settings.Timeout,
		options: options,
	}
}

func (rt *RemoteTranscriber) Name() string {
	return providerName
}

// ValidateConfiguration validates the provider configuration
func (rt *RemoteTranscriber) ValidateConfiguration() error {
	if err := config.ValidateAPIKey(rt.apiKey, "OpenAI"); err != nil {
		return err
	}
	if err := config.ValidateURL(rt.baseURL, "OpenAI base"); err != nil {
		return err
	}
	return config.ValidateTimeout(rt.timeout, "OpenAI")
}

// Transcribe uploads the file and maps the verbose_json segments to one paragraph.
// Whisper has no paragraph segmentation, so each segment becomes a sentence.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, file model.AudioFile) (*model.Transcription, error) {
	audio, err := os.Open(file.FullPath)
	if err != nil {
		return nil, apperrors.ErrFileOpenFailed.WithCause(err)
	}
	defer audio.Close()

	req := openai.AudioRequest{
		Model:    rt.options.Model,
		FilePath: file.Name,
		Reader:   audio,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: isoLanguage(rt.options.Language),
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithCause(rt.handleAPIError(err))
	}

	sentences := make([]model.Sentence, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		sentences = append(sentences, model.Sentence{Text: text, Start: seg.Start, End: seg.End})
	}
	if len(sentences) == 0 {
		if text := strings.TrimSpace(resp.Text); text != "" {
			sentences = append(sentences, model.Sentence{Text: text, End: resp.Duration})
		}
	}

	if len(sentences) == 0 {
		return &model.Transcription{Paragraphs: []model.Paragraph{}}, nil
	}
	return &model.Transcription{Paragraphs: []model.Paragraph{{Sentences: sentences}}}, nil
}

// handleAPIError converts OpenAI API errors to provider errors
func (rt *RemoteTranscriber) handleAPIError(err error) error {
	te := &provider.TranscriptionError{
		Code:     "api_error",
		Message:  fmt.Sprintf("createTranscription failed: %v", err),
		Provider: providerName,
		Cause:    err,
	}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		te.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		te.StatusCode = reqErr.HTTPStatusCode
	default:
		te.Code = "network_error"
		te.Retryable = true
		return te
	}

	switch {
	case te.StatusCode == http.StatusUnauthorized:
		te.Code = "authentication_failed"
		te.Suggestions = []string{"Check OPENAI_API_KEY in your .env file"}
	case te.StatusCode == http.StatusTooManyRequests:
		te.Code = "rate_limit_exceeded"
		te.Retryable = true
	case te.StatusCode == http.StatusRequestEntityTooLarge:
		te.Code = "file_too_large"
		te.Suggestions = []string{"OpenAI accepts files up to 25MB"}
	case te.StatusCode >= 500:
		te.Code = "server_error"
		te.Retryable = true
	}
	return te
}

// isoLanguage reduces a locale such as "en-US" to the ISO-639-1 code Whisper expects.
func isoLanguage(locale string) string {
	lang, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(lang)
}
