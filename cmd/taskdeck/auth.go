package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/nav"
)

func (a *app) authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Log in, register and inspect the current session",
	}
	cmd.AddCommand(a.loginCmd(), a.registerCmd(), a.logoutCmd(), a.whoamiCmd())
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Long: `Log in to the backend with email and password.

The session is stored per terminal context, so logging in here does not
affect other shells.

Examples:
  taskdeck auth login --email user@example.com --password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			if password == "" {
				return errors.New("--password is required")
			}

			a.guard.Allow(nav.ViewLogin)
			result, err := a.client.Auth().Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := a.store.Commit(result.Token, result.User); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			a.router.To(nav.ViewProjects)

			if a.structured() {
				return a.render(result.User)
			}
			_, err = fmt.Fprintf(a.out, "Logged in as %s (%s)\n", result.User.Name, result.User.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account. Registration does not log you in;
run "taskdeck auth login" afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" || email == "" || password == "" {
				return errors.New("--name, --email and --password are required")
			}

			a.guard.Allow(nav.ViewRegister)
			msg, err := a.client.Auth().Register(cmd.Context(), name, email, password)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			return a.message(msg, "Account created. Log in with `taskdeck auth login`.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session in this terminal context",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !a.store.IsAuthenticated() {
				_, err := fmt.Fprintln(a.out, "Not logged in.")
				return err
			}
			if err := a.store.Clear(); err != nil {
				return err
			}
			a.router.ToLogin()
			_, err := fmt.Fprintln(a.out, "Logged out.")
			return err
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account this terminal context is logged in as",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.require(nav.ViewProfile); err != nil {
				return err
			}
			user, ok := a.store.CurrentUser()
			if !ok {
				return errLoginRequired
			}
			if a.structured() {
				return a.render(user)
			}
			_, err := fmt.Fprintf(a.out, "%s (%s), role %s\n", user.Name, user.Email, user.Role)
			return err
		},
	}
}
