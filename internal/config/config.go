// Package config loads sports settings using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "sports"

// Config holds all settings.
type Config struct {
	StateFile string `mapstructure:"state_file" yaml:"state_file,omitempty"`
	Resources string `mapstructure:"resources" yaml:"resources,omitempty"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file,omitempty"`
	Mouse     bool   `mapstructure:"mouse" yaml:"mouse"`
	Theme     string `mapstructure:"theme" yaml:"theme"`
}

// Load resolves configuration with precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("state_file", DefaultStateFile())
	v.SetDefault("resources", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("mouse", true)
	v.SetDefault("theme", "classic")

	v.SetEnvPrefix("SPORTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"state_file", "resources", "log_level", "log_file", "mouse", "theme"} {
		if err := v.BindEnv(key, "SPORTS_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if globalPath := GlobalPath(); fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}
	if projectPath := ProjectPath(); fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// GlobalPath returns $XDG_CONFIG_HOME/sports/sports.yml or ~/.config/sports/sports.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, appName+".yml")
}

// ProjectPath returns ./sports.yml.
func ProjectPath() string {
	return appName + ".yml"
}

// DefaultStateFile returns where the list snapshot is kept between runs.
func DefaultStateFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "state.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", appName, "state.json")
}

// WriteGlobal writes cfg to the global config path.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
