// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/techangelx/gradewiz/internal/grade"
	"gopkg.in/yaml.v3"
)

// MaxComponentsLimit is the largest max_components accepted. The wizard
// renders one input per component.
const MaxComponentsLimit = 20

// Config holds all configuration values for gradewiz.
type Config struct {
	MaxComponents int    `mapstructure:"max_components" yaml:"max_components"`
	Rounding      string `mapstructure:"rounding" yaml:"rounding"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		MaxComponents: grade.DefaultMaxComponents,
		Rounding:      grade.RoundHalfUp.String(),
		LogLevel:      "info",
		LogFile:       "",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
//
// flags may be nil. Only flags the user actually set override other sources.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("gradewiz")

	def := Default()
	v.SetDefault("max_components", def.MaxComponents)
	v.SetDefault("rounding", def.Rounding)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	// Setup ENV binding with GRADEWIZ_ prefix
	v.SetEnvPrefix("GRADEWIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Explicit ENV bindings so Unmarshal sees env-only keys
	for _, key := range []string{"max_components", "rounding", "log_level", "log_file"} {
		if err := v.BindEnv(key, "GRADEWIZ_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding %s flag: %w", name, err)
				}
			}
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"max_components": "max-components",
	"rounding":       "rounding",
	"log_level":      "log-level",
	"log_file":       "log-file",
}

// Validate checks values that the wizard depends on.
func (c *Config) Validate() error {
	if c.MaxComponents < 1 {
		return fmt.Errorf("max_components must be at least 1, got %d", c.MaxComponents)
	}
	if c.MaxComponents > MaxComponentsLimit {
		return fmt.Errorf("max_components must be at most %d, got %d", MaxComponentsLimit, c.MaxComponents)
	}
	if _, err := grade.ParseRounding(c.Rounding); err != nil {
		return fmt.Errorf("rounding: %w", err)
	}
	return nil
}

// RoundingPolicy returns the parsed rounding policy, defaulting to half-up.
func (c *Config) RoundingPolicy() grade.Rounding {
	r, err := grade.ParseRounding(c.Rounding)
	if err != nil {
		return grade.RoundHalfUp
	}
	return r
}

// NewSession returns a wizard session bounded by the configured maximum.
func (c *Config) NewSession() *grade.Session {
	return grade.NewSession(grade.WithMaxComponents(c.MaxComponents))
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/gradewiz/gradewiz.yml or $XDG_CONFIG_HOME/gradewiz/gradewiz.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gradewiz", "gradewiz.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gradewiz", "gradewiz.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./gradewiz.yml in the current working directory.
func ProjectPath() string {
	return "gradewiz.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
