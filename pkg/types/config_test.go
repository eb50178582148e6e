package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSyncConfigIsValid(t *testing.T) {
	cfg := DefaultSyncConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.FeaturedCount)
	assert.Equal(t, 6, cfg.MaxAttempts)
}

func TestValidateAcceptsAttemptLimit(t *testing.T) {
	cfg := DefaultSyncConfig()
	cfg.MaxAttempts = MaxAttemptsLimit
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SyncConfig)
		want   string
	}{
		{"no profile url", func(c *SyncConfig) { c.ProfileURL = "" }, "profile_url"},
		{"no base url", func(c *SyncConfig) { c.BaseURL = "" }, "base_url"},
		{"no data file", func(c *SyncConfig) { c.DataFile = "" }, "data_file"},
		{"no block name", func(c *SyncConfig) { c.BlockName = "" }, "block_name"},
		{"zero attempts", func(c *SyncConfig) { c.MaxAttempts = 0 }, "max_attempts"},
		{"too many attempts", func(c *SyncConfig) { c.MaxAttempts = MaxAttemptsLimit + 1 }, "max_attempts must not exceed 20"},
		{"negative backoff", func(c *SyncConfig) { c.InitialBackoff = -1 }, "initial_backoff"},
		{"negative featured", func(c *SyncConfig) { c.FeaturedCount = -1 }, "featured_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSyncConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
