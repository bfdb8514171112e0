package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/env"
	applog "github.com/ManuelReschke/Store2070/internal/pkg/logger"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
)

const (
	storeKeyring = "keyring"
	storeFile    = "file"
)

// options holds the flags shared by all subcommands.
type options struct {
	endpoint string
	store    string
	profile  string
	timeout  time.Duration
	logLevel string
}

// NewRootCmd creates the root command for the store2070ctl CLI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "store2070ctl",
		Short: "Store 2070 account client",
		Long: `store2070ctl signs in to the Store 2070 core, keeps the session
in the OS keyring or a profile file, and checks route access for it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applog.InitWithWriter(opts.logLevel, "console", cmd.ErrOrStderr())
			if opts.store != storeKeyring && opts.store != storeFile {
				return fmt.Errorf("unknown store %q, want %s or %s", opts.store, storeKeyring, storeFile)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.endpoint, "endpoint", env.GetEnv("GRAPHQL_ENDPOINT", authclient.DefaultEndpoint), "GraphQL endpoint of the core")
	flags.StringVar(&opts.store, "store", storeKeyring, "session storage: keyring or file")
	flags.StringVar(&opts.profile, "profile", "", "profile file for --store=file (default ~/.config/store2070/session.json)")
	flags.DurationVar(&opts.timeout, "timeout", env.GetDuration("AUTH_TIMEOUT", authclient.DefaultTimeout), "request timeout")
	flags.StringVar(&opts.logLevel, "log-level", env.GetEnv("LOG_LEVEL", "warn"), "log level")

	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newRegisterCmd(opts))
	cmd.AddCommand(newLogoutCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))

	return cmd
}

func (o *options) client() *authclient.Client {
	return authclient.New(authclient.Config{
		Endpoint: o.endpoint,
		Timeout:  o.timeout,
	})
}

// sessionStore opens the configured backend.
func (o *options) sessionStore() (session.Store, error) {
	if o.store == storeKeyring {
		return session.NewKeyringStore(session.DefaultKeyringService), nil
	}

	path := o.profile
	if path == "" {
		var err error
		if path, err = session.DefaultProfilePath(); err != nil {
			return nil, fmt.Errorf("resolve profile path: %w", err)
		}
	}
	return session.NewFileStore(path), nil
}
