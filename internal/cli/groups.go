package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seafloor/grouper/internal/nss"
	"github.com/seafloor/grouper/internal/resolve"
)

// GroupsOptions holds flags for the groups command.
type GroupsOptions struct {
	*RootOptions
	Primary uint32
	Ceiling int
}

// MembershipResult is the CLI-facing shape of a materialized membership.
type MembershipResult struct {
	User string   `json:"user"`
	GIDs []uint32 `json:"gids"`
}

func (r MembershipResult) String() string {
	s := r.User + ":"
	for i, gid := range r.GIDs {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", gid)
	}
	return s
}

// NewGroupsCommand creates the groups command.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GroupsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "groups <user>",
		Short: "List the supplementary gids of a user",
		Long: `Collect every supplementary group id of a user, excluding the primary
gid, into a geometrically growing array.

With --ceiling the array refuses to grow past the given size; a run cut
short that way exits with TRYAGAIN/LIMIT_REACHED, the way the host sees
it.

Examples:
  grouper groups alice --db ./groups.db
  grouper groups alice --db ./groups.db --primary 100 --ceiling 16`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(opts, cmd, args[0])
		},
	}

	cmd.Flags().Uint32Var(&opts.Primary, "primary", 0, "primary gid to exclude")
	cmd.Flags().IntVar(&opts.Ceiling, "ceiling", 0, "max array size (0 = unbounded)")

	return cmd
}

func runGroups(opts *GroupsOptions, cmd *cobra.Command, user string) error {
	ctx := context.Background()
	svc := opts.service()
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	b := resolve.NewGIDBuf(4, opts.Ceiling)
	st := svc.MaterializeMembership(ctx, user, opts.Primary, b, 0)
	if st == nss.StatusLimitReached {
		return NewExitError(ExitFailure,
			fmt.Sprintf("user %s: gid array ceiling %d reached after %d ids (%s)",
				user, opts.Ceiling, b.Len(), st))
	}
	if !st.OK() {
		return statusExitError(st, "user "+user)
	}
	out.VerboseLog("collected %d gids for %s", b.Len(), user)

	return out.Success(MembershipResult{User: user, GIDs: b.IDs()})
}
