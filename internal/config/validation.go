package config

import (
	"strings"
	"time"

	apperrors "batch-transcriber/internal/app/errors"
)

// ValidateTimeout validates a request timeout. Zero means no timeout.
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return apperrors.Newf(apperrors.KindConfig, "%s timeout cannot be negative", name)
	}
	if timeout > 2*time.Hour {
		return apperrors.Newf(apperrors.KindConfig, "%s timeout too large (max 2 hours)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return apperrors.ErrMissingAPIKey.WithCause(apperrors.Newf(apperrors.KindConfig, "%s API key is empty", keyType))
	}

	if strings.ContainsAny(apiKey, " \t\r\n") {
		return apperrors.ErrInvalidAPIKey.WithCause(apperrors.Newf(apperrors.KindConfig, "%s API key contains whitespace", keyType))
	}

	switch keyType {
	case "Deepgram":
		if len(apiKey) < 32 {
			return apperrors.ErrInvalidAPIKey.WithCause(apperrors.Newf(apperrors.KindConfig, "invalid DEEPGRAM_API_KEY format: too short"))
		}
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return apperrors.ErrInvalidAPIKey.WithCause(apperrors.Newf(apperrors.KindConfig, "invalid OPENAI_API_KEY format: must start with 'sk-'"))
		}
		if len(apiKey) < 20 {
			return apperrors.ErrInvalidAPIKey.WithCause(apperrors.Newf(apperrors.KindConfig, "invalid OPENAI_API_KEY format: too short"))
		}
	}

	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return apperrors.Newf(apperrors.KindConfig, "%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return apperrors.Newf(apperrors.KindConfig, "%s URL must start with http:// or https://", name)
	}

	return nil
}
