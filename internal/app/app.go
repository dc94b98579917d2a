// Package app implements the img2ascii command line.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:               "img2ascii",
	Short:             "Convert images to text art and back",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: appPersistentPreRun,
}

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c",
		"", "Configuration file",
	)
	rootCmd.PersistentFlags().StringVarP(
		&logLevel, "level", "l",
		configs.Config.Main.LogLevel, "Log level",
	)
}

func appPersistentPreRun(cmd *cobra.Command, _ []string) error {
	created, err := createConfigFile(configPath)
	if err != nil {
		return err
	}
	if err := configs.LoadConfiguration(configPath); err != nil {
		return fmt.Errorf("error loading configuration (%w)", err)
	}
	if cmd.Flags().Changed("level") {
		configs.Config.Main.LogLevel = logLevel
	}

	// Setup logger
	lvl, err := log.ParseLevel(configs.Config.Main.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(colorable.NewColorableStderr())
	log.WithField("log_level", lvl).Debug()
	if created {
		log.WithField("path", configPath).Info("configuration file created")
	}

	return nil
}

// createConfigFile writes the default configuration to filename when it
// does not exist yet.
func createConfigFile(filename string) (bool, error) {
	if filename == "" {
		return false, nil
	}
	_, err := os.Stat(filename)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := configs.WriteConfig(filename); err != nil {
		return false, err
	}
	return true, nil
}

func createFolder(name string) error {
	stat, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(name, 0750)
		}
		return err
	}
	if !stat.IsDir() {
		return fmt.Errorf("'%s' is not a directory", name)
	}
	return nil
}

// Run executes the command line. SIGINT and SIGTERM cancel a running
// conversion.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
