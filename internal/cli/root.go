// Package cli implements the grouper command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seafloor/grouper/internal/config"
	"github.com/seafloor/grouper/internal/nss"
)

// RootOptions holds global flags and the resolved configuration shared
// by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Database   string // overrides the configured database path

	cfg config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the grouper CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "grouper",
		Short: "Resolve group identities from a SQLite store",
		Long: `grouper resolves group identity records (name, gid, members) from a
SQLite database through the NSS-style buffer-and-retry calling convention.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.resolveConfig()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite group database (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))

	return cmd
}

// resolveConfig merges the config file, flags, and defaults, and wires
// the log level.
func (o *RootOptions) resolveConfig() error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}
	o.cfg = cfg

	level := slog.LevelWarn
	switch {
	case o.Verbose:
		level = slog.LevelDebug
	case cfg.LogLevel != "":
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// service returns a resolution service over the configured database.
func (o *RootOptions) service() *nss.Service {
	return nss.NewService(o.cfg.Database)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
