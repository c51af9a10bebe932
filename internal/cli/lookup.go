package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/nss"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <name|gid>",
		Short: "Resolve one group by name or numeric id",
		Long: `Resolve a single group record. A purely numeric argument is treated
as a gid, anything else as a group name.

Examples:
  grouper lookup staff --db ./groups.db
  grouper lookup 100 --db ./groups.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runLookup(opts *RootOptions, cmd *cobra.Command, key string) error {
	ctx := context.Background()
	svc := opts.service()
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	gid, numErr := strconv.ParseUint(key, 10, 32)
	byID := numErr == nil

	var g group.Group
	st, err := withGrowingBuffer(opts.cfg.BufferSize, opts.cfg.MaxBufferSize, func(buf []byte) nss.Status {
		var st nss.Status
		if byID {
			g, st = svc.LookupByID(ctx, uint32(gid), buf)
		} else {
			g, st = svc.LookupByName(ctx, key, buf)
		}
		return st
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "lookup", err)
	}
	if !st.OK() {
		return statusExitError(st, "group "+key)
	}

	return out.Success(newGroupEntry(g))
}
