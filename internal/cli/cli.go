// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transportation/internal/config"
)

const appName = "transportation"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	seed       int64
	cfg        config.Config
	ui         *theme
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent pre-run loads the configuration, applies --seed and attaches
// the logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Initial plans, potentials and marginal costs for transportation problems",
		Long:         `transportation builds a North-West-Corner plan for a balanced transportation problem, repairs its graph into a spanning tree, and reports the dual potentials and marginal costs of that basis.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = c.seed
			}
			c.cfg = cfg
			c.ui = newTheme(cfg.Render)
			c.Logger.Debug("configuration", "seed", cfg.Seed, "type", cfg.ValueType, "lp", cfg.CompareLP)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.SetOut(c.out)
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML run configuration")
	root.PersistentFlags().Int64Var(&c.seed, "seed", 0, "seed for spanning-tree repair and generation")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.benchCommand())

	return root
}
