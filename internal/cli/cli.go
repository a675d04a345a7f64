// Package cli implements the repohealth command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repohealth/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and env prefixes.
	appName = "repohealth"

	// defaultAddr is the dashboard listen address.
	defaultAddr = ":8080"
)

// Log levels accepted by New.
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
	env    envConfig
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Before any subcommand runs, --verbose sets the log level, environment
// defaults (.env, REPOHEALTH_*) are loaded and c.Logger is attached to the
// command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Repohealth audits repositories for dependency and packaging health",
		Long:         `Repohealth inspects checked-out repositories, extracts normalized dependency inventories and packaging metadata, and aggregates the results into a single report.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			env, err := loadEnv()
			if err != nil {
				return err
			}
			c.env = env
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.depsCommand())

	return root
}
