package llm

import (
	"fmt"
	"os"
)

// NewProvider creates a new generative backend provider based on the given
// provider type and model. Supported provider types: "google", "openai".
func NewProvider(providerType string, model string) (Provider, error) {
	switch providerType {
	case "google":
		apiKey := GoogleAPIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		}
		return NewGoogleProvider(apiKey, model), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

// GoogleAPIKey returns the configured Gemini API key. GEMINI_API_KEY is the
// canonical variable; GOOGLE_API_KEY is accepted as a fallback.
func GoogleAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// HasCredentials reports whether the environment carries an API key for the
// given provider type. Running without credentials is a valid mode: the chat
// pipeline simply skips the generative tier.
func HasCredentials(providerType string) bool {
	switch providerType {
	case "google":
		return GoogleAPIKey() != ""
	case "openai":
		return os.Getenv("OPENAI_API_KEY") != ""
	default:
		return false
	}
}
