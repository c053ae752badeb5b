// Package cmd provides CLI commands for the restyle engine. This file wires
// the root command and the configuration plumbing the subcommands share.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/restyle/core/cache"
	"github.com/adalundhe/restyle/core/config"
	"github.com/adalundhe/restyle/core/tools"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "restyle",
	Short: "Restyle - a natural language style engine",
	Long: `Restyle turns free-form styling instructions like "make it bigger and blue"
into structured, confidence-scored style changes for page-builder elements.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML config file")
}

// loadConfig reads defaults, then the config file, then the environment.
// A missing config file is not an error.
func loadConfig() (*config.Config, error) {
	manager := config.NewManager(configPath)
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return manager.Get(), nil
}

// newLogger builds the process logger from config. Logs go to stderr so
// stdout stays clean for command output and the MCP stdio transport.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// buildToolkit assembles the styling toolkit from config. The returned
// cleanup releases the interpretation cache, when one was enabled.
func buildToolkit(cfg *config.Config, logger *slog.Logger) (*tools.Toolkit, func(), error) {
	var interpCache *cache.Cache
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.ToCacheConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("building cache: %w", err)
		}
		interpCache = c
	}

	toolkit, err := tools.New(tools.Config{
		Logger:      logger,
		Cache:       interpCache,
		UserPresets: cfg.UserPresets(),
	})
	if err != nil {
		if interpCache != nil {
			interpCache.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if interpCache != nil {
			interpCache.Close()
		}
	}
	return toolkit, cleanup, nil
}
