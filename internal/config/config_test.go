package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err, "should load without error")

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, []string{"console"}, cfg.Logging.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("AREACALC_TEST_DIR", tmpDir)

	content := `
data_dir: ${AREACALC_TEST_DIR}/data
logging:
  level: debug
  format: json
output:
  format: json
input:
  path: shapes.yaml
`
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "data"), cfg.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "shapes.yaml", cfg.Input.Path)

	// Unset fields keep their defaults
	assert.Equal(t, "15:04:05.000", cfg.Logging.TimeFormat)
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()

	content := `
[logging]
level = "info"

[output]
format = "toml"
label = "Total: "
`
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "toml", cfg.Output.Format)
	assert.Equal(t, "Total: ", cfg.Output.Label)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := DefaultConfig()
			cfg.Output.Format = "html"
			cfg.Input.Path = "/tmp/shapes.json"
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvLogLevel, "error")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"uppercase level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"unknown output format", func(c *Config) { c.Output.Format = "pdf" }, true},
		{"json output", func(c *Config) { c.Output.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasLogOutput(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.HasLogOutput("console"))
	assert.False(t, cfg.HasLogOutput("file"))

	cfg.Logging.Output = []string{"both"}
	assert.True(t, cfg.HasLogOutput("console"))
	assert.True(t, cfg.HasLogOutput("file"))

	cfg.Logging.Output = []string{"stdout"}
	assert.True(t, cfg.HasLogOutput("console"))
}
