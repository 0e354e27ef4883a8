package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/access"
	"github.com/taskdeck/taskdeck/internal/domain/model"
	"github.com/taskdeck/taskdeck/internal/nav"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer accounts (admin only)",
	}
	cmd.AddCommand(a.userListCmd(), a.userShowCmd(), a.userEditCmd(), a.userDeleteCmd())
	return cmd
}

// requireAdmin gates the admin surface. The backend re-checks; this only
// avoids offering commands that will be rejected.
func (a *app) requireAdmin() error {
	if err := a.require(nav.ViewUsers); err != nil {
		return err
	}
	viewer, ok := a.store.CurrentUser()
	if !ok {
		return errLoginRequired
	}
	if !access.IsAdmin(viewer) {
		return errors.New("user administration requires the admin role")
	}
	return nil
}

func (a *app) userListCmd() *cobra.Command {
	var deleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(c *cobra.Command, _ []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}

			query := model.UserQuery{}
			if deleted {
				query.IsDeleted = "true"
			}
			users, err := a.client.Users().List(c.Context(), query)
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(users)
			}
			return a.userTable(users)
		},
	}

	cmd.Flags().BoolVar(&deleted, "deleted", false, "list deleted accounts instead")
	return cmd
}

func (a *app) userShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			user, err := a.client.Users().Get(c.Context(), userID)
			if err != nil {
				return err
			}
			return a.render(user)
		},
	}
}

func (a *app) userEditCmd() *cobra.Command {
	var (
		name  string
		email string
		admin bool
	)

	cmd := &cobra.Command{
		Use:   "edit <user-id>",
		Short: "Edit an account",
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}

			updates := model.EditUser{Name: name, Email: email}
			if c.Flags().Changed("admin") {
				updates.IsAdmin = &admin
			}
			if name == "" && email == "" && updates.IsAdmin == nil {
				return errors.New("nothing to change; pass --name, --email or --admin")
			}

			msg, err := a.client.Users().Edit(c.Context(), userID, updates)
			if err != nil {
				return err
			}
			return a.message(msg, "Account updated.")
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant or revoke the admin role")
	return cmd
}

func (a *app) userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			msg, err := a.client.Users().Delete(c.Context(), userID)
			if err != nil {
				return err
			}
			return a.message(msg, "Account deleted.")
		},
	}
}
