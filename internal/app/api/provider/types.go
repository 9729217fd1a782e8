package provider

import (
	"time"
)

// TranscriptionOptions is the fixed request configuration sent with every file.
type TranscriptionOptions struct {
	Language   string
	Model      string
	Punctuate  bool
	Paragraphs bool
}

// DefaultOptions returns language en-US with punctuation and paragraph segmentation enabled.
// Model is left empty so each provider applies its own default.
func DefaultOptions() TranscriptionOptions {
	return TranscriptionOptions{
		Language:   "en-US",
		Punctuate:  true,
		Paragraphs: true,
	}
}

// Settings carries everything a provider constructor needs.
type Settings struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Options TranscriptionOptions
}

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	StatusCode  int      `json:"status_code,omitempty"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`
	Cause       error    `json:"-"`
}

func (e *TranscriptionError) Error() string {
	return e.Provider + ": " + e.Message
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}
