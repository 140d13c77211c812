// Released under an MIT license. See LICENSE.

// Package config loads classeditor's settings.
//
// Settings come, in increasing precedence, from defaults, a TOML file and
// CLASSEDITOR_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "CLASSEDITOR"
	// File is the name of the configuration file in $HOME.
	File = ".classeditor.toml"
	// History is the name of the history file in $HOME.
	History = ".classeditor_history"
)

// T (config) holds the settings of one run.
type T struct {
	Prompt  string        `mapstructure:"prompt"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

// HistoryConfig controls the line editor's history.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type config = T

// Default returns the settings used when nothing is configured.
func Default() *config {
	return &config{
		Prompt: "> ",
		History: HistoryConfig{
			Enabled: true,
			File:    home(History),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads settings. If path is empty $HOME/.classeditor.toml is used
// when it exists; an explicit path must exist.
func Load(path string) (*config, error) {
	d := Default()

	v := viper.New()

	v.SetDefault("prompt", d.Prompt)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.file", d.History.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = home(File)
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			var missing viper.ConfigFileNotFoundError
			if explicit || !(errors.As(err, &missing) || errors.Is(err, os.ErrNotExist)) {
				return nil, err
			}
		}
	}

	c := &config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	return c, nil
}

func home(name string) string {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return ""
	}

	return filepath.Join(dir, name)
}
