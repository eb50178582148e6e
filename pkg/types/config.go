package types

import (
	"errors"
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The profile
	// host serves degraded pages to non-browser clients, so this must look
	// like a desktop browser.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// RetryConfig controls the rate-limit retry loop.
type RetryConfig struct {
	// MaxAttempts is the total number of requests made before giving up on
	// repeated HTTP 429 responses (default 6).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// InitialBackoff is the base delay doubled on each rate-limited attempt (default 2s).
	InitialBackoff time.Duration `json:"initial_backoff" yaml:"initial_backoff" mapstructure:"initial_backoff"`
}

// SyncConfig groups every setting of a publication sync run.
type SyncConfig struct {
	HTTPConfig  `yaml:",inline" mapstructure:",squash"`
	RetryConfig `yaml:",inline" mapstructure:",squash"`

	// ProfileURL is the listing page fetched on each run.
	ProfileURL string `json:"profile_url" yaml:"profile_url" mapstructure:"profile_url"`

	// BaseURL resolves relative links found on the listing page.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// DataFile is the website file holding the publications block.
	DataFile string `json:"data_file" yaml:"data_file" mapstructure:"data_file"`

	// BlockName is the name of the declared list inside DataFile.
	BlockName string `json:"block_name" yaml:"block_name" mapstructure:"block_name"`

	// GeneratorNote is written as a comment at the top of the generated block.
	GeneratorNote string `json:"generator_note" yaml:"generator_note" mapstructure:"generator_note"`

	// FeaturedCount is the number of leading records marked visible (default 6).
	FeaturedCount int `json:"featured_count" yaml:"featured_count" mapstructure:"featured_count"`
}

const (
	DefaultProfileURL = "https://scholar.google.com/citations" +
		"?hl=en&user=jMPHBZMAAAAJ&view_op=list_works&sortby=pubdate"
	DefaultBaseURL   = "https://scholar.google.com"
	DefaultDataFile  = "data.js"
	DefaultBlockName = "publications"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	DefaultGeneratorNote  = "NOTE: Auto-generated by scholar-sync"
	DefaultFeaturedCount  = 6
	DefaultTimeout        = 30 * time.Second
	DefaultMaxAttempts    = 6
	DefaultInitialBackoff = 2 * time.Second

	// MaxAttemptsLimit bounds max_attempts; past it the doubling backoff
	// would wait for years.
	MaxAttemptsLimit = 20
)

// DefaultSyncConfig returns the configuration used when no file or
// environment override is present.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		RetryConfig: RetryConfig{
			MaxAttempts:    DefaultMaxAttempts,
			InitialBackoff: DefaultInitialBackoff,
		},
		ProfileURL:    DefaultProfileURL,
		BaseURL:       DefaultBaseURL,
		DataFile:      DefaultDataFile,
		BlockName:     DefaultBlockName,
		GeneratorNote: DefaultGeneratorNote,
		FeaturedCount: DefaultFeaturedCount,
	}
}

// Validate reports the first setting that would make a run meaningless.
func (c SyncConfig) Validate() error {
	switch {
	case c.ProfileURL == "":
		return errors.New("profile_url must be set")
	case c.BaseURL == "":
		return errors.New("base_url must be set")
	case c.DataFile == "":
		return errors.New("data_file must be set")
	case c.BlockName == "":
		return errors.New("block_name must be set")
	case c.MaxAttempts <= 0:
		return errors.New("max_attempts must be positive")
	case c.MaxAttempts > MaxAttemptsLimit:
		return fmt.Errorf("max_attempts must not exceed %d", MaxAttemptsLimit)
	case c.InitialBackoff < 0:
		return errors.New("initial_backoff must not be negative")
	case c.FeaturedCount < 0:
		return errors.New("featured_count must not be negative")
	}
	return nil
}
