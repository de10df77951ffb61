package config

// defaultModels maps each provider to its default chat model.
var defaultModels = map[ProviderType]string{
	ProviderGoogle: "gemini-2.0-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults. The defaults run a
// catalog/FAQ-only service when no backend API key is present.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderGoogle,
		Model:        defaultModels[ProviderGoogle],
		Port:         8080,
		CatalogDir:   "data",
		CatalogGlobs: []string{"products*.json"},
		DataDir:      "data",
		AllowAll:     false,
	}
}

// DefaultModel returns the default chat model for the given provider.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
