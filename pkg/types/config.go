// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Defaults for NewsConfig.
const (
	DefaultEndpoint     = "https://news.google.com/rss/search"
	DefaultLanguage     = "ko"
	DefaultRegion       = "KR"
	DefaultMaxResults   = 10
	DefaultMaxSentences = 2
	DefaultTimeout      = 10 * time.Second
	DefaultUserAgent    = "newsbot/0.1"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NewsConfig holds settings for fetching and summarizing news.
type NewsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the RSS search endpoint the query string is appended to.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Language is the interface language code sent as part of hl and ceid (default "ko").
	Language string `json:"language" yaml:"language"`

	// Region is the country code sent as gl and part of hl and ceid (default "KR").
	Region string `json:"region" yaml:"region"`

	// MaxResults caps the number of articles per query (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxSentences is the number of leading sentences kept in a summary (default 2).
	MaxSentences int `json:"max_sentences" yaml:"max_sentences"`
}

// DefaultNewsConfig returns the configuration newsbot runs with when nothing
// is overridden.
func DefaultNewsConfig() NewsConfig {
	return NewsConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Endpoint:     DefaultEndpoint,
		Language:     DefaultLanguage,
		Region:       DefaultRegion,
		MaxResults:   DefaultMaxResults,
		MaxSentences: DefaultMaxSentences,
	}
}

// Validate reports the first invalid setting.
func (c NewsConfig) Validate() error {
	switch {
	case c.Endpoint == "":
		return fmt.Errorf("endpoint must not be empty")
	case c.Language == "":
		return fmt.Errorf("language must not be empty")
	case c.Region == "":
		return fmt.Errorf("region must not be empty")
	case c.MaxResults <= 0:
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	case c.MaxSentences <= 0:
		return fmt.Errorf("max_sentences must be positive, got %d", c.MaxSentences)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
