package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	apperrors "batch-transcriber/internal/app/errors"
)

// EnvPaths are the locations searched for a credential file, first match wins.
var EnvPaths = []string{
	".env",
	".env.local",
	"../.env",
}

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Deepgram string
	OpenAI   string
}

// LoadEnv loads environment variables from the first .env file found.
// It returns the path that was loaded, or "" when none exists; variables may be set system-wide.
func LoadEnv() (string, error) {
	for _, envPath := range EnvPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", apperrors.Wrapf(err, apperrors.KindConfig, "error loading %s file", envPath)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Keys that are present but malformed fail immediately; absent keys are checked by RequireAPIKey.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Deepgram: strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
		OpenAI:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	if apiKeys.Deepgram != "" {
		if err := ValidateAPIKey(apiKeys.Deepgram, "Deepgram"); err != nil {
			return nil, err
		}
	}
	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, err
		}
	}

	return apiKeys, nil
}

// RequireAPIKey returns the credential for the named provider or a config error when it is missing.
func RequireAPIKey(apiKeys *APIKeys, providerName string) (string, error) {
	if apiKeys == nil {
		apiKeys = &APIKeys{}
	}

	var key, envName string
	switch providerName {
	case "deepgram":
		key, envName = apiKeys.Deepgram, "DEEPGRAM_API_KEY"
	case "openai":
		key, envName = apiKeys.OpenAI, "OPENAI_API_KEY"
	default:
		return "", apperrors.ErrProviderNotFound.WithCause(fmt.Errorf("no credential known for provider %q", providerName))
	}

	if key == "" {
		return "", apperrors.ErrMissingAPIKey.WithCause(
			fmt.Errorf("set %s in the environment or a .env file", envName))
	}
	return key, nil
}

// InitializeConfig loads environment and validates configuration
// This is the main entry point for configuration loading
func InitializeConfig() (*APIKeys, string, error) {
	loaded, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, loaded, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, loaded, nil
}
