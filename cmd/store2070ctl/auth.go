package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
)

type loginConfig struct {
	password string
}

func newLoginCmd(opts *options) *cobra.Command {
	cfg := &loginConfig{}

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the session",
		Long: `Sign in against the core with username and password. On success the
session token and role are written to the selected store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts, cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&cfg.password, "password", "", "password (prompted when empty)")

	return cmd
}

func runLogin(cmd *cobra.Command, opts *options, cfg *loginConfig, username string) error {
	password := cfg.password
	if password == "" {
		secrets, err := readSecrets(cmd, "Password")
		if err != nil {
			return err
		}
		password = secrets[0]
	}

	store, err := opts.sessionStore()
	if err != nil {
		return err
	}

	res := opts.client().Login(commandContext(cmd), store, username, password)
	if !res.Success {
		return resultError("login", res)
	}

	if res.IsAdmin {
		cmd.Println("Access granted (admin).")
	} else {
		cmd.Println("Access granted.")
	}
	return nil
}

type registerConfig struct {
	password string
	confirm  string
}

func newRegisterCmd(opts *options) *cobra.Command {
	cfg := &registerConfig{}

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and store the session",
		Long: `Create an account on the core. The password has to be entered twice;
a mismatch is rejected before anything is sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, opts, cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&cfg.password, "password", "", "password (prompted when empty)")
	cmd.Flags().StringVar(&cfg.confirm, "confirm", "", "password confirmation (prompted when empty)")

	return cmd
}

func runRegister(cmd *cobra.Command, opts *options, cfg *registerConfig, username string) error {
	password, confirm := cfg.password, cfg.confirm
	if password == "" {
		secrets, err := readSecrets(cmd, "Password", "Confirm password")
		if err != nil {
			return err
		}
		password, confirm = secrets[0], secrets[1]
	} else if confirm == "" {
		secrets, err := readSecrets(cmd, "Confirm password")
		if err != nil {
			return err
		}
		confirm = secrets[0]
	}

	store, err := opts.sessionStore()
	if err != nil {
		return err
	}

	res := opts.client().Register(commandContext(cmd), store, username, password, confirm)
	if !res.Success {
		return resultError("register", res)
	}

	if res.UserID != "" {
		cmd.Printf("Account %s created.\n", res.UserID)
	} else {
		cmd.Println("Account created.")
	}
	return nil
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.sessionStore()
			if err != nil {
				return err
			}
			store.Clear()
			cmd.Println("Session cleared.")
			return nil
		},
	}
}

var errRejected = errors.New("rejected")

// resultError turns a failed Result into the command error. Only the
// message is shown; kinds are for logs.
func resultError(op string, res authclient.Result) error {
	if res.Kind == authclient.KindDomain || res.Kind == authclient.KindValidation {
		return fmt.Errorf("%s %w: %s", op, errRejected, res.Message)
	}
	return fmt.Errorf("%s failed: %s", op, res.Message)
}

// commandContext keeps commands usable when executed without a context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
