// Package configs holds the img2ascii command line configuration.
package configs

import (
	"os"
	"runtime"

	"github.com/pelletier/go-toml"
)

type config struct {
	Main    configMain    `toml:"main"`
	Convert configConvert `toml:"convert"`
	Preview configPreview `toml:"preview"`
}

type configMain struct {
	LogLevel string `toml:"log_level"`
}

type configConvert struct {
	Workers       int    `toml:"workers"`
	Interpolation string `toml:"interpolation"`
	MaxWidth      int    `toml:"max_width"`
	MaxHeight     int    `toml:"max_height"`
	OutputDir     string `toml:"output_dir"`
}

type configPreview struct {
	Scale int    `toml:"scale"`
	Font  string `toml:"font"`
}

// Config holds the configuration data from the configuration file
// or flags.
//
// It starts with default values that a configuration file might
// overwrite.
var Config = defaults()

func defaults() config {
	return config{
		Main: configMain{
			LogLevel: "info",
		},
		Convert: configConvert{
			Workers:       runtime.NumCPU(),
			Interpolation: "linear",
			MaxWidth:      100,
			MaxHeight:     100,
			OutputDir:     ".",
		},
		Preview: configPreview{
			Scale: 2,
		},
	}
}

// LoadConfiguration loads the configuration file. An empty path keeps
// the current values.
func LoadConfiguration(configPath string) error {
	if configPath == "" {
		return nil
	}

	fd, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer fd.Close()

	return toml.NewDecoder(fd).Decode(&Config)
}

// WriteConfig writes the current configuration to a file.
func WriteConfig(filename string) error {
	fd, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	enc := toml.NewEncoder(fd).
		Indentation("  ").
		Order(toml.OrderPreserve)

	if err = enc.Encode(Config); err != nil {
		fd.Close()
		return err
	}

	return fd.Close()
}
