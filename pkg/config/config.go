package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vincentdm05/sortinclude/pkg/cxx"
)

const (
	// File is the on-disk name of the configuration file.
	File = ".sortinclude.yaml"

	// EnvIgnoreCase overrides the ignoreCase config field when set to a
	// boolean value.
	EnvIgnoreCase = "SORTINCLUDE_IGNORE_CASE"

	configName = ".sortinclude"
	configType = "yaml"
)

// Config represents the sortinclude configuration
type Config struct {
	IgnoreCase bool     `yaml:"ignoreCase" mapstructure:"ignoreCase"`
	Extensions []string `yaml:"extensions" mapstructure:"extensions"`
	Exclude    []string `yaml:"exclude" mapstructure:"exclude"`
	Jobs       int      `yaml:"jobs" mapstructure:"jobs"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IgnoreCase: false,
		Extensions: cxx.DefaultExtensions(),
		Exclude:    []string{"build", "node_modules", "vendor"},
		Jobs:       0, // zero resolves to the number of CPUs
	}
}

// Load reads .sortinclude.yaml from dir. Fields absent from the file keep
// their default values, and a missing file yields the default
// configuration.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to .sortinclude.yaml in dir.
func (c *Config) Save(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, File), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return &ConfigError{Field: "jobs", Message: "must not be negative"}
	}
	if len(c.Extensions) == 0 {
		return &ConfigError{Field: "extensions", Message: "must not be empty"}
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return &ConfigError{Field: "extensions", Message: fmt.Sprintf("extension %q must start with a dot", ext)}
		}
	}
	return nil
}

// ResolveIgnoreCase determines the effective ignore-case setting.
// Precedence: CLI flag (when explicitly set) > SORTINCLUDE_IGNORE_CASE env
// var > config file > default (case-sensitive).
func (c *Config) ResolveIgnoreCase(flagSet, flagValue bool) bool {
	if flagSet {
		return flagValue
	}
	if env := os.Getenv(EnvIgnoreCase); env != "" {
		if value, err := strconv.ParseBool(env); err == nil {
			return value
		}
	}
	return c.IgnoreCase
}

// ResolveJobs determines the effective worker count.
// Precedence: CLI flag > config file > number of CPUs.
func (c *Config) ResolveJobs(flagSet bool, flagValue int) int {
	if flagSet && flagValue > 0 {
		return flagValue
	}
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
