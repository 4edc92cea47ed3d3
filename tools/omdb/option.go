package omdb

import (
	"net/http"

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

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

func WithAPIKey(apiKey string) Option {
	return func(c *Config) {
		c.apiKey = apiKey
	}
}

// WithFullPlot requests the long form plot from the source.
func WithFullPlot() Option {
	return func(c *Config) {
		c.fullPlot = true
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
