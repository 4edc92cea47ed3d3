package summaryfile

import (
	"github.com/go-playground/validator/v10"

	"github.com/cinebrief/cinebrief/tools"
)

type Option func(*Config)

// WithToolOptions applies shared tool configuration such as the title,
// description and hooks.
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.outputDir = dir
	}
}

func WithValidator(v *validator.Validate) Option {
	return func(c *Config) {
		c.validate = v
	}
}
