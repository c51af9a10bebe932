package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/nss"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Enumerate every group in the database",
		Long: `Enumerate all groups through the shared enumeration cursor, growing
the record buffer as needed, exactly as an NSS host walks the group set.

Examples:
  grouper list --db ./groups.db
  grouper list --db ./groups.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	svc := opts.service()
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if st := svc.OpenEnumeration(ctx); !st.OK() {
		return statusExitError(st, "group enumeration")
	}
	defer svc.CloseEnumeration()

	var entries []GroupEntry
	for {
		var g group.Group
		st, err := withGrowingBuffer(opts.cfg.BufferSize, opts.cfg.MaxBufferSize, func(buf []byte) nss.Status {
			var st nss.Status
			g, st = svc.NextEntry(ctx, buf)
			return st
		})
		if err != nil {
			return WrapExitError(ExitCommandError, "list", err)
		}
		if st.Code == nss.NotFound {
			break
		}
		if !st.OK() {
			return statusExitError(st, "group enumeration")
		}
		entries = append(entries, newGroupEntry(g))
	}
	out.VerboseLog("enumerated %d groups", len(entries))

	if opts.Format == "json" {
		return out.Success(entries)
	}
	for _, e := range entries {
		if err := out.Success(e); err != nil {
			return err
		}
	}
	return nil
}
