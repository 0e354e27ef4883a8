package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/access"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
	"github.com/taskdeck/taskdeck/internal/nav"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Browse and manage projects",
	}
	cmd.AddCommand(
		a.projectListCmd(),
		a.projectShowCmd(),
		a.projectCreateCmd(),
		a.projectEditCmd(),
		a.projectDeleteCmd(),
		a.projectLeaveCmd(),
		a.projectMembersCmd(),
		a.projectTagsCmd(),
	)
	return cmd
}

func (a *app) projectListCmd() *cobra.Command {
	var (
		sortBy   string
		order    string
		page     int
		pageSize int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects you can see",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(nav.ViewProjects); err != nil {
				return err
			}

			query := model.ProjectQuery{
				SortBy:   model.SortBy(sortBy),
				Order:    model.Order(order),
				Page:     page,
				PageSize: pageSize,
			}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				query.Status = parsed
			}

			projects, err := a.client.Projects().List(cmd.Context(), query)
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(projects)
			}
			return a.projectTable(projects)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort key: createdAt, updatedAt or projectName")
	cmd.Flags().StringVar(&order, "order", "", "sort direction: asc or desc")
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting from 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func (a *app) projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its tags, tasks and invite candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			detail, err := a.loader.ProjectDetail(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(detail)
			}

			fmt.Fprintf(a.out, "%s (#%d) %s\ncreated by %s\n", detail.Project.Name, detail.Project.ID, detail.Project.Status, detail.Project.CreatorName)
			if detail.Project.Description != "" {
				fmt.Fprintln(a.out, detail.Project.Description)
			}
			if len(detail.Tags) > 0 {
				names := make([]string, len(detail.Tags))
				for i, tag := range detail.Tags {
					names[i] = tag.Name
				}
				fmt.Fprintf(a.out, "tags: %s\n", strings.Join(names, ", "))
			}
			fmt.Fprintln(a.out)
			return a.taskTable(detail.Tasks)
		},
	}
}

func (a *app) projectCreateCmd() *cobra.Command {
	var name, description, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(nav.ViewProjects); err != nil {
				return err
			}
			if name == "" {
				return errors.New("--name is required")
			}

			project := model.CreateProject{Name: name, Description: description}
			if status != "" {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				project.Status = parsed
			}

			msg, err := a.client.Projects().Create(cmd.Context(), project)
			if err != nil {
				return err
			}
			return a.message(msg, "Project created.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&status, "status", "", "initial status")
	return cmd
}

func (a *app) projectEditCmd() *cobra.Command {
	var name, description, status string

	cmd := &cobra.Command{
		Use:   "edit <project-id>",
		Short: "Edit a project",
		Long: `Edit a project's name, description or status. Only the creator and
OWNER members can edit; a completed project only accepts status changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(nav.ViewEditProject); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			if name == "" && description == "" && status == "" {
				return errors.New("nothing to change; pass --name, --description or --status")
			}

			project, err := a.client.Projects().Get(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if viewer, ok := a.store.CurrentUser(); ok {
				if !access.CanEditProject(viewer, project) {
					return errors.New("only the project creator or an owner can edit this project")
				}
				if (name != "" || description != "") && !access.CanFullyEdit(viewer, project) {
					return errors.New("a completed project only accepts status changes")
				}
			}

			updates := model.EditProject{Name: name, Description: description}
			if status != "" {
				parsed, parseErr := model.ParseStatus(status)
				if parseErr != nil {
					return parseErr
				}
				updates.Status = parsed
			}

			msg, err := a.client.Projects().Update(cmd.Context(), projectID, updates)
			if err != nil {
				return err
			}
			return a.message(msg, "Project updated.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	return cmd
}

func (a *app) projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjects); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			msg, err := a.client.Projects().Delete(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			return a.message(msg, "Project deleted.")
		},
	}
}

func (a *app) projectLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <project-id>",
		Short: "Leave a project you are a member of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			viewer, ok := a.store.CurrentUser()
			if !ok {
				return errLoginRequired
			}

			project, err := a.client.Projects().Get(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if !access.CanLeaveProject(viewer, project) {
				return errors.New("you can only leave a project you are a member of but did not create")
			}

			msg, err := a.client.Projects().RemoveMember(cmd.Context(), projectID, viewer.ID)
			if err != nil {
				return err
			}
			return a.message(msg, "Left the project.")
		},
	}
}

func (a *app) projectMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage project membership",
	}

	var inviteUsers []int
	var inviteRole string
	invite := &cobra.Command{
		Use:   "invite <project-id>",
		Short: "Invite users to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			if len(inviteUsers) == 0 {
				return errors.New("--user is required at least once")
			}
			role, err := parseProjectRole(inviteRole)
			if err != nil {
				return err
			}

			invites := make([]model.MemberRoleChange, 0, len(inviteUsers))
			for _, userID := range inviteUsers {
				invites = append(invites, model.MemberRoleChange{UserID: userID, Role: role})
			}
			msg, err := a.client.Projects().InviteMembers(c.Context(), projectID, invites)
			if err != nil {
				return err
			}
			return a.message(msg, "Invitations sent.")
		},
	}
	invite.Flags().IntSliceVar(&inviteUsers, "user", nil, "user id to invite (repeatable)")
	invite.Flags().StringVar(&inviteRole, "role", "USER", "project role: OWNER or USER")

	var newRole string
	setRole := &cobra.Command{
		Use:   "set-role <project-id> <user-id>",
		Short: "Change a member's project role",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			userID, err := parseID(args[1], "user id")
			if err != nil {
				return err
			}
			role, err := parseProjectRole(newRole)
			if err != nil {
				return err
			}

			msg, err := a.client.Projects().SetMemberRole(c.Context(), projectID, model.MemberRoleChange{UserID: userID, Role: role})
			if err != nil {
				return err
			}
			return a.message(msg, "Role updated.")
		},
	}
	setRole.Flags().StringVar(&newRole, "role", "", "project role: OWNER or USER")

	remove := &cobra.Command{
		Use:   "remove <project-id> <user-id>",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			userID, err := parseID(args[1], "user id")
			if err != nil {
				return err
			}
			msg, err := a.client.Projects().RemoveMember(c.Context(), projectID, userID)
			if err != nil {
				return err
			}
			return a.message(msg, "Member removed.")
		},
	}

	cmd.AddCommand(invite, setRole, remove)
	return cmd
}

func (a *app) projectTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage a project's tags",
	}

	list := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			tags, err := a.client.Projects().Tags(c.Context(), projectID)
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(tags)
			}
			return a.tagTable(tags.Tags)
		},
	}

	var addName string
	add := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			if addName == "" {
				return errors.New("--name is required")
			}
			msg, err := a.client.Projects().AddTag(c.Context(), projectID, addName)
			if err != nil {
				return err
			}
			return a.message(msg, "Tag created.")
		},
	}
	add.Flags().StringVar(&addName, "name", "", "tag name")

	var renameName string
	rename := &cobra.Command{
		Use:   "rename <project-id> <tag-id>",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			tagID, err := parseID(args[1], "tag id")
			if err != nil {
				return err
			}
			if renameName == "" {
				return errors.New("--name is required")
			}
			msg, err := a.client.Projects().EditTag(c.Context(), projectID, tagID, renameName)
			if err != nil {
				return err
			}
			return a.message(msg, "Tag renamed.")
		},
	}
	rename.Flags().StringVar(&renameName, "name", "", "new tag name")

	del := &cobra.Command{
		Use:   "delete <project-id> <tag-id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			tagID, err := parseID(args[1], "tag id")
			if err != nil {
				return err
			}
			msg, err := a.client.Projects().DeleteTag(c.Context(), projectID, tagID)
			if err != nil {
				return err
			}
			return a.message(msg, "Tag deleted.")
		},
	}

	cmd.AddCommand(list, add, rename, del)
	return cmd
}

func parseProjectRole(s string) (auth.ProjectRole, error) {
	switch role := auth.ProjectRole(strings.ToUpper(strings.TrimSpace(s))); role {
	case auth.ProjectRoleOwner, auth.ProjectRoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("invalid project role: %q (valid options: OWNER, USER)", s)
	}
}
