package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/Store2070/internal/pkg/guard"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long:  `Show whether a session is stored and which role it carries. The token itself is never printed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.sessionStore()
			if err != nil {
				return err
			}

			s, ok := store.Get()
			switch {
			case !ok:
				cmd.Println("not signed in")
			case s.IsAdmin:
				cmd.Println("signed in (admin)")
			default:
				cmd.Println("signed in")
			}
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <public|authenticated|admin>",
		Short: "Evaluate route access for the stored session",
		Long: `Run the route guard for a route class against the stored session and
print the outcome. Exits non-zero unless access is allowed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"public", "authenticated", "admin"},
		RunE: func(cmd *cobra.Command, args []string) error {
			class, ok := guard.ParseClassification(args[0])
			if !ok {
				return fmt.Errorf("unknown route class %q", args[0])
			}

			store, err := opts.sessionStore()
			if err != nil {
				return err
			}

			state := guard.Check(store, class)
			cmd.Println(state.String())
			if state != guard.Allowed {
				return fmt.Errorf("access to %s route: %s", class, state)
			}
			return nil
		},
	}
}
