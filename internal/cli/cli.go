// Package cli implements the sese command-line interface.
//
// This package provides commands for analyzing control-flow graphs into
// SESE regions, rendering the results as visualizations, browsing the
// program structure tree interactively, and serving the analysis over HTTP.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - analyze: Decompose a graph into SESE regions and emit the result JSON
//   - viz: Render the CFG, PST, or region overlay as DOT, SVG, or PNG
//   - tree: Browse the program structure tree in the terminal
//   - examples: Write ready-made example graphs to disk
//   - serve: Expose the analysis as an HTTP API
//   - cache: Manage the local render cache
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/klintqinami/sese-regions/pkg/buildinfo"
	"github.com/klintqinami/sese-regions/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "sese"

// Log levels exported for use with New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// Execute builds the full command tree against stderr logging and runs it
// until ctx is cancelled. The --verbose flag raises the log level before
// any command body runs. This is the single entry point used by main.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	return root.ExecuteContext(ctx)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sese",
		Short:        "sese decomposes control-flow graphs into canonical regions",
		Long:         `sese computes the canonical single-entry/single-exit decomposition of a directed graph and its program structure tree, and renders both as Graphviz visualizations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.vizCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.examplesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newCache creates the render cache for CLI use.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.Nop()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.Nop()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.Nop()
	}
	return c
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/sese/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
