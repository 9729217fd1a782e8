package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"batch-transcriber/internal/app/api/provider"
	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/model"
	"batch-transcriber/internal/config"
)

const providerName = "deepgram"

// PrerecordedProvider submits whole files to the Deepgram /listen endpoint.
type PrerecordedProvider struct {
	config Config
	client *http.Client
}

// Config represents configuration for the Deepgram provider
type Config struct {
	APIKey  string
	BaseURL string
	// Timeout of zero leaves the request unbounded.
	Timeout time.Duration
	Options provider.TranscriptionOptions
}

// ListenResponse is the subset of the pre-recorded response this client reads.
type ListenResponse struct {
	Metadata *Metadata `json:"metadata,omitempty"`
	Results  *Results  `json:"results,omitempty"`
}

type Metadata struct {
	RequestID string  `json:"request_id"`
	Duration  float64 `json:"duration"`
	Channels  int     `json:"channels"`
}

type Results struct {
	Channels []Channel `json:"channels"`
}

type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

type Alternative struct {
	Transcript string           `json:"transcript"`
	Confidence float64          `json:"confidence"`
	Paragraphs *ParagraphsBlock `json:"paragraphs,omitempty"`
}

type ParagraphsBlock struct {
	Transcript string      `json:"transcript"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
	NumWords  int        `json:"num_words"`
	Start     float64    `json:"start"`
	End       float64    `json:"end"`
}

type Sentence struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// errorResponse is the body Deepgram returns with 4xx/5xx statuses.
type errorResponse struct {
	ErrCode   string `json:"err_code"`
	ErrMsg    string `json:"err_msg"`
	RequestID string `json:"request_id"`
}

// NewPrerecordedProvider creates a new Deepgram provider
func NewPrerecordedProvider(cfg Config) *PrerecordedProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultDeepgramBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Options.Model == "" {
		cfg.Options.Model = config.DefaultDeepgramModel
	}
	if cfg.Options.Language == "" {
		cfg.Options.Language = config.DefaultLanguage
	}

	return &PrerecordedProvider{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *PrerecordedProvider) Name() string {
	return providerName
}

// ValidateConfiguration validates the provider configuration
func (p *PrerecordedProvider) ValidateConfiguration() error {
	if err := config.ValidateAPIKey(p.config.APIKey, "Deepgram"); err != nil {
		return err
	}
	if err := config.ValidateURL(p.config.BaseURL, "Deepgram base"); err != nil {
		return err
	}
	return config.ValidateTimeout(p.config.Timeout, "Deepgram")
}

// ListenURL returns the endpoint with the fixed query options applied.
func (p *PrerecordedProvider) ListenURL() string {
	query := url.Values{}
	query.Set("model", p.config.Options.Model)
	query.Set("language", p.config.Options.Language)
	query.Set("punctuate", strconv.FormatBool(p.config.Options.Punctuate))
	query.Set("paragraphs", strconv.FormatBool(p.config.Options.Paragraphs))
	return p.config.BaseURL + "/listen?" + query.Encode()
}

// Transcribe streams file to Deepgram and returns its paragraph structure.
func (p *PrerecordedProvider) Transcribe(ctx context.Context, file model.AudioFile) (*model.Transcription, error) {
	audio, err := os.Open(file.FullPath)
	if err != nil {
		return nil, apperrors.ErrFileOpenFailed.WithCause(err)
	}
	defer audio.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.ListenURL(), audio)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithCause(err)
	}
	req.Header.Set("Authorization", "Token "+p.config.APIKey)
	req.Header.Set("Content-Type", file.MimeType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "batch-transcriber/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithCause(&provider.TranscriptionError{
			Code:      "network_error",
			Message:   fmt.Sprintf("failed to call Deepgram API: %v", err),
			Provider:  providerName,
			Retryable: true,
			Cause:     err,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrRequestFailed.WithCause(p.handleHTTPError(resp))
	}

	var listenResp ListenResponse
	if err := json.NewDecoder(resp.Body).Decode(&listenResp); err != nil {
		return nil, apperrors.ErrResponseInvalid.WithCause(&provider.TranscriptionError{
			Code:     "response_parse_error",
			Message:  fmt.Sprintf("failed to parse API response: %v", err),
			Provider: providerName,
			Cause:    err,
		})
	}

	return listenResp.Transcription()
}

// Transcription converts results.channels[0].alternatives[0].paragraphs.paragraphs.
// A response without that path is malformed; an empty paragraph list is valid (silence).
func (r *ListenResponse) Transcription() (*model.Transcription, error) {
	missing := func(path string) error {
		return apperrors.ErrResponseInvalid.WithCause(&provider.TranscriptionError{
			Code:     "missing_paragraphs",
			Message:  "response has no " + path,
			Provider: providerName,
		})
	}

	switch {
	case r.Results == nil:
		return nil, missing("results")
	case len(r.Results.Channels) == 0:
		return nil, missing("results.channels[0]")
	case len(r.Results.Channels[0].Alternatives) == 0:
		return nil, missing("results.channels[0].alternatives[0]")
	}

	alt := r.Results.Channels[0].Alternatives[0]
	if alt.Paragraphs == nil || alt.Paragraphs.Paragraphs == nil {
		return nil, missing("paragraphs.paragraphs (was the request sent with paragraphs=true?)")
	}

	t := &model.Transcription{Paragraphs: make([]model.Paragraph, 0, len(alt.Paragraphs.Paragraphs))}
	for _, para := range alt.Paragraphs.Paragraphs {
		out := model.Paragraph{Sentences: make([]model.Sentence, 0, len(para.Sentences))}
		for _, s := range para.Sentences {
			out.Sentences = append(out.Sentences, model.Sentence{Text: s.Text, Start: s.Start, End: s.End})
		}
		t.Paragraphs = append(t.Paragraphs, out)
	}
	return t, nil
}

// handleHTTPError handles HTTP error responses
func (p *PrerecordedProvider) handleHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	detail := strings.TrimSpace(string(body))
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrMsg != "" {
		detail = apiErr.ErrMsg
		if apiErr.RequestID != "" {
			detail += " (request_id " + apiErr.RequestID + ")"
		}
	}

	te := &provider.TranscriptionError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		te.Code = "authentication_failed"
		te.Message = "Deepgram API key is invalid or lacks permission: " + detail
		te.Suggestions = []string{"Check DEEPGRAM_API_KEY in your .env file"}
	case http.StatusPaymentRequired:
		te.Code = "insufficient_credits"
		te.Message = "Deepgram project has insufficient credits: " + detail
	case http.StatusTooManyRequests:
		te.Code = "rate_limit_exceeded"
		te.Message = "Deepgram API rate limit exceeded"
		te.Retryable = true
		te.Suggestions = []string{"Wait a moment and try again"}
	case http.StatusRequestEntityTooLarge:
		te.Code = "file_too_large"
		te.Message = "Audio file is too large"
		te.Suggestions = []string{"Split the recording into smaller files"}
	case http.StatusBadRequest:
		te.Code = "invalid_request"
		te.Message = "Invalid request: " + detail
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		te.Code = "server_error"
		te.Message = "Deepgram server error: " + detail
		te.Retryable = true
	default:
		te.Code = "unknown_error"
		te.Message = fmt.Sprintf("Unexpected HTTP status %d: %s", resp.StatusCode, detail)
	}
	return te
}
