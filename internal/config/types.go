package config

// ProviderType identifies a generative backend provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level shopassist configuration, corresponding to
// .shopassist.yml.
type Config struct {
	Provider     ProviderType `yaml:"provider" koanf:"provider"`
	Model        string       `yaml:"model" koanf:"model"`
	Port         int          `yaml:"port" koanf:"port"`
	CatalogDir   string       `yaml:"catalog_dir" koanf:"catalog_dir"`
	CatalogGlobs []string     `yaml:"catalog_globs" koanf:"catalog_globs"`
	DataDir      string       `yaml:"data_dir" koanf:"data_dir"`
	AllowAll     bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
