package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

const (
	appName   = "scholar-sync"
	envPrefix = "SCHOLAR_SYNC"
)

func initConfig() {
	// Variables already set in the environment win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "warning: could not load .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so that environment overrides are seen by
// Unmarshal even when no config file exists.
func setDefaults(v *viper.Viper) {
	d := types.DefaultSyncConfig()
	v.SetDefault("profile_url", d.ProfileURL)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("block_name", d.BlockName)
	v.SetDefault("generator_note", d.GeneratorNote)
	v.SetDefault("featured_count", d.FeaturedCount)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("max_attempts", d.MaxAttempts)
	v.SetDefault("initial_backoff", d.InitialBackoff)
}

// loadConfig decodes v into a validated SyncConfig.
func loadConfig(v *viper.Viper) (types.SyncConfig, error) {
	cfg := types.DefaultSyncConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.SyncConfig{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.SyncConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
