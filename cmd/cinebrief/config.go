package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bububa/instructor-go/pkg/instructor"
	"github.com/cinebrief/cinebrief/tools/summaryfile"
)

// Config is the optional application configuration, loaded from a YAML file
// next to the binary. Every field has a sensible default; secrets never live
// here, only in the environment.
type Config struct {
	// Provider is the language model provider: openai, anthropic or cohere
	Provider string `yaml:"provider"`
	// Model is the model name passed to the provider
	Model string `yaml:"model"`
	// Temperature for response generation
	Temperature float32 `yaml:"temperature"`
	// MaxTokens allowed per model response
	MaxTokens int `yaml:"max_tokens"`
	// OutputDir is where summary files are written, relative to the cwd
	OutputDir string `yaml:"output_dir"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Provider:    string(instructor.ProviderOpenAI),
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   1000,
		OutputDir:   summaryfile.DefaultOutputDir,
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Model = model
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// llmKeyEnv maps a provider to the environment variable holding its secret.
func llmKeyEnv(provider string) string {
	switch instructor.Provider(strings.ToLower(provider)) {
	case instructor.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case instructor.ProviderCohere:
		return "COHERE_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// validateSecrets checks that both required secrets are present before any
// network or model call is attempted. The returned error carries the
// remediation message printed to the user.
func validateSecrets(provider string, getenv func(string) string) error {
	var missing []string
	if key := llmKeyEnv(provider); getenv(key) == "" {
		missing = append(missing, key)
	}
	if getenv("OMDB_API_KEY") == "" {
		missing = append(missing, "OMDB_API_KEY")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required environment variables: %s\nset them in the environment or in a .env file, then restart", strings.Join(missing, ", "))
}
