package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	t.Cleanup(func() { Config = defaults() })
	Config = defaults()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
log_level = "debug"

[convert]
workers = 3
interpolation = "box"
`), 0600))

	require.NoError(t, LoadConfiguration(path))
	assert.Equal(t, "debug", Config.Main.LogLevel)
	assert.Equal(t, 3, Config.Convert.Workers)
	assert.Equal(t, "box", Config.Convert.Interpolation)

	// Keys missing from the file keep their defaults
	assert.Equal(t, 100, Config.Convert.MaxWidth)
	assert.Equal(t, ".", Config.Convert.OutputDir)
	assert.Equal(t, 2, Config.Preview.Scale)
}

func TestLoadConfigurationEmptyPath(t *testing.T) {
	t.Cleanup(func() { Config = defaults() })
	Config = defaults()

	require.NoError(t, LoadConfiguration(""))
	assert.Equal(t, defaults(), Config)
}

func TestLoadConfigurationErrors(t *testing.T) {
	t.Cleanup(func() { Config = defaults() })
	dir := t.TempDir()

	assert.Error(t, LoadConfiguration(filepath.Join(dir, "missing.toml")))

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[main\nlog_level ="), 0600))
	assert.Error(t, LoadConfiguration(path))
}

func TestWriteConfig(t *testing.T) {
	t.Cleanup(func() { Config = defaults() })
	Config = defaults()
	Config.Preview.Font = "/fonts/mono.ttf"
	Config.Convert.MaxHeight = 40

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfig(path))

	want := Config
	Config = defaults()
	require.NoError(t, LoadConfiguration(path))
	assert.Equal(t, want, Config)
}
