// Package config provides configuration management for the areacalc CLI.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/areacalc/pkg/format"
)

// Config represents the CLI configuration.
type Config struct {
	DataDir string        `yaml:"data_dir" toml:"data_dir"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Input   InputConfig   `yaml:"input" toml:"input"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level      string   `yaml:"level" toml:"level"`
	Format     string   `yaml:"format" toml:"format"` // text or json
	Output     []string `yaml:"output" toml:"output"` // console, file, both
	TimeFormat string   `yaml:"time_format" toml:"time_format"`
	MaxSizeMB  int      `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups" toml:"max_backups"`
}

// OutputConfig contains result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
	Label  string `yaml:"label" toml:"label"`
}

// InputConfig contains shape document settings.
type InputConfig struct {
	// Path is the shape document used when none is given on the command line.
	Path string `yaml:"path" toml:"path"`
}

// Environment variables that override file settings.
const (
	EnvFormat   = "AREACALC_FORMAT"
	EnvLogLevel = "AREACALC_LOG_LEVEL"
)

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
	"panic": true,
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			Output:     []string{"console"},
			TimeFormat: "15:04:05.000",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Output: OutputConfig{
			Format: format.FormatText,
		},
	}
}

// DefaultDataDir returns the default data directory based on OS.
func DefaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "areacalc")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", "areacalc")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "areacalc")
	default: // linux and others
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			return filepath.Join(xdgConfig, "areacalc")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".areacalc")
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load loads configuration from a YAML or TOML file, selected by extension.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	if isTOML(path) {
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Expand tilde in data_dir
	if strings.HasPrefix(cfg.DataDir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.DataDir = filepath.Join(home, cfg.DataDir[2:])
	}

	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format: must be text or json, got %q", c.Logging.Format)
	}
	if !format.Has(c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q (known: %s)",
			c.Output.Format, strings.Join(format.Formats(), ", "))
	}
	return nil
}

// Save saves the configuration to a YAML or TOML file, selected by extension.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LogsDir returns the directory for log files.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// HasLogOutput reports whether the named log output is enabled.
// "both" enables console and file.
func (c *Config) HasLogOutput(name string) bool {
	for _, output := range c.Logging.Output {
		if output == name || output == "both" {
			return true
		}
		if name == "console" && output == "stdout" {
			return true
		}
	}
	return false
}
