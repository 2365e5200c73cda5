// Package config holds process-level settings, as opposed to the hotel
// resource itself, which internal/hotel loads on its own fallback contract.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds application configuration.
type Settings struct {
	Resource ResourceSettings
	Log      LogSettings
}

// ResourceSettings points at the bundled hotel resource.
type ResourceSettings struct {
	Path string
}

// LogSettings controls the debug log sink. An empty file disables logging
// entirely so nothing ever writes over the TUI.
type LogSettings struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// SWIFTLABEL_. A missing config file is not an error.
func Load() (Settings, error) {
	v := viper.New()

	v.SetDefault("resource.path", "Config.toml")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SWIFTLABEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "swiftlabel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWIFTLABEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
