// Package cli implements the swotboard command-line interface.
//
// Commands are methods on [CLI] so they share one logger and one
// configuration. The main commands are:
//   - serve: host the interactive page
//   - edit: edit the confrontation matrix in the terminal
//   - render: export both PNGs, optionally re-rendering on change
//   - init: write the example document to disk
//
// All commands support --verbose (-v) for debug-level logging and read
// defaults from an optional config file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/swotboard/pkg/buildinfo"
	"github.com/matzehuels/swotboard/pkg/cache"
	"github.com/matzehuels/swotboard/pkg/observability"
	"github.com/matzehuels/swotboard/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "swotboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Swotboard builds SWOT analyses and TOWS confrontation matrices",
		Long: `Swotboard turns four lists (strengths, weaknesses, opportunities, threats)
into a SWOT diagram and an editable TOWS confrontation matrix, and exports
both as PNG images.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+displayConfigPath()+")")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies the log level and installs the
// log-backed hooks before any command runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := LogInfo
	if c.verbose || cfg.Verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	hooks := newLogHooks(c.Logger)
	observability.SetWorkspaceHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.NewLRUCache(cache.DefaultLRUSize)
}
