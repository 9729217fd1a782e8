package config

// Provider default configuration constants
const (
	DefaultProvider = "deepgram"

	// Deepgram pre-recorded API
	DefaultDeepgramBaseURL = "https://api.deepgram.com/v1"
	DefaultDeepgramModel   = "nova"

	// OpenAI transcription API
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "whisper-1"

	DefaultLanguage = "en-US"

	// USD per minute of audio for the nova model
	DefaultCostPerMinute = 0.0043
)

// DefaultBaseURL returns the API base URL for a provider, or "" when unknown.
func DefaultBaseURL(provider string) string {
	switch provider {
	case "deepgram":
		return DefaultDeepgramBaseURL
	case "openai":
		return DefaultOpenAIBaseURL
	default:
		return ""
	}
}
