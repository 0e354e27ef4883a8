package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/domain/model"
	"github.com/taskdeck/taskdeck/internal/nav"
)

func (a *app) tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Browse and manage a project's tasks",
	}
	cmd.AddCommand(
		a.taskListCmd(),
		a.taskBoardCmd(),
		a.taskShowCmd(),
		a.taskAddCmd(),
		a.taskEditCmd(),
		a.taskDeleteCmd(),
		a.taskAssignCmd(),
		a.taskUnassignCmd(),
		a.taskCommentsCmd(),
		a.taskTagsCmd(),
		a.taskAttachmentsCmd(),
	)
	return cmd
}

func (a *app) taskListCmd() *cobra.Command {
	var (
		status     string
		sortBy     string
		order      string
		byDeadline bool
	)

	cmd := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			query := model.TaskQuery{
				SortBy: model.TaskSortBy(sortBy),
				Order:  model.Order(order),
			}
			if status != "" {
				parsed, parseErr := model.ParseStatus(status)
				if parseErr != nil {
					return parseErr
				}
				query.Status = parsed
			}

			list, err := a.client.Tasks().List(c.Context(), projectID, query)
			if err != nil {
				return err
			}
			if byDeadline {
				model.SortTasksByDeadline(list.Tasks)
			}
			if a.structured() {
				return a.render(list)
			}
			return a.taskTable(list.Tasks)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort key: createdAt, updatedAt or taskName")
	cmd.Flags().StringVar(&order, "order", "", "sort direction: asc or desc")
	cmd.Flags().BoolVar(&byDeadline, "by-deadline", false, "sort locally by deadline, earliest first")
	return cmd
}

func (a *app) taskBoardCmd() *cobra.Command {
	var sortBy, order string

	cmd := &cobra.Command{
		Use:   "board <project-id>",
		Short: "Show a project's tasks as a three-column status board",
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			board, err := a.loader.TaskBoard(c.Context(), projectID, model.TaskQuery{
				SortBy: model.TaskSortBy(sortBy),
				Order:  model.Order(order),
			})
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(board)
			}

			columns := []struct {
				title string
				tasks []model.Task
			}{
				{"PENDING", board.Pending},
				{"IN_PROGRESS", board.InProgress},
				{"COMPLETED", board.Completed},
			}
			for _, col := range columns {
				fmt.Fprintf(a.out, "%s (%d)\n", col.title, len(col.tasks))
				for _, t := range col.tasks {
					line := fmt.Sprintf("  #%d %s", t.ID, t.Name)
					if t.Deadline != "" {
						line += " due " + t.Deadline
					}
					fmt.Fprintln(a.out, line)
				}
				fmt.Fprintln(a.out)
			}
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort key: createdAt, updatedAt or taskName")
	cmd.Flags().StringVar(&order, "order", "", "sort direction: asc or desc")
	return cmd
}

func (a *app) taskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id> <task-id>",
		Short: "Show a task with members, comments, tags and attachments",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}

			detail, err := a.client.Tasks().Get(c.Context(), projectID, taskID)
			if err != nil {
				return err
			}
			if a.structured() {
				return a.render(detail)
			}

			fmt.Fprintf(a.out, "%s (#%d) %s\ncreated by %s\n", detail.Name, detail.ID, detail.Status, detail.CreatorName)
			if detail.Deadline != "" {
				fmt.Fprintf(a.out, "due %s\n", detail.Deadline)
			}
			if detail.Description != "" {
				fmt.Fprintln(a.out, detail.Description)
			}
			if len(detail.Members) > 0 {
				names := make([]string, len(detail.Members))
				for i, m := range detail.Members {
					names[i] = m.Name
				}
				fmt.Fprintf(a.out, "assignees: %s\n", strings.Join(names, ", "))
			}
			if len(detail.Tags) > 0 {
				names := make([]string, len(detail.Tags))
				for i, t := range detail.Tags {
					names[i] = t.Name
				}
				fmt.Fprintf(a.out, "tags: %s\n", strings.Join(names, ", "))
			}
			for _, att := range detail.Attachments {
				fmt.Fprintf(a.out, "attachment #%d %s (by %s)\n", att.ID, att.FileName, att.CreatorName)
			}
			for _, comment := range detail.Comments {
				fmt.Fprintf(a.out, "[%d] %s: %s\n", comment.ID, comment.UserName, comment.Content)
			}
			return nil
		},
	}
}

func (a *app) taskAddCmd() *cobra.Command {
	var name, description, status, deadline string

	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewProjectDetail); err != nil {
				return err
			}
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			if name == "" {
				return errors.New("--name is required")
			}

			task := model.NewTask{Name: name, Description: description, Deadline: deadline}
			if status != "" {
				parsed, parseErr := model.ParseStatus(status)
				if parseErr != nil {
					return parseErr
				}
				task.Status = parsed
			}

			msg, err := a.client.Tasks().Add(c.Context(), projectID, task)
			if err != nil {
				return err
			}
			return a.message(msg, "Task added.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "task name")
	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringVar(&status, "status", "", "initial status")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline, yyyy-MM-dd")
	return cmd
}

func (a *app) taskEditCmd() *cobra.Command {
	var name, description, status, deadline string

	cmd := &cobra.Command{
		Use:   "edit <project-id> <task-id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			if name == "" && description == "" && status == "" && deadline == "" {
				return errors.New("nothing to change; pass --name, --description, --status or --deadline")
			}

			updates := model.EditTask{Name: name, Description: description, Deadline: deadline}
			if status != "" {
				parsed, parseErr := model.ParseStatus(status)
				if parseErr != nil {
					return parseErr
				}
				updates.Status = parsed
			}

			msg, err := a.client.Tasks().Update(c.Context(), projectID, taskID, updates)
			if err != nil {
				return err
			}
			return a.message(msg, "Task updated.")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new task name")
	cmd.Flags().StringVar(&description, "description", "", "new task description")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&deadline, "deadline", "", "new deadline, yyyy-MM-dd")
	return cmd
}

func (a *app) taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id> <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().Delete(c.Context(), projectID, taskID)
			if err != nil {
				return err
			}
			return a.message(msg, "Task deleted.")
		},
	}
}

func (a *app) taskAssignCmd() *cobra.Command {
	var userIDs []int

	cmd := &cobra.Command{
		Use:   "assign <project-id> <task-id>",
		Short: "Assign members to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			if len(userIDs) == 0 {
				return errors.New("--user is required at least once")
			}
			msg, err := a.client.Tasks().AssignMembers(c.Context(), projectID, taskID, userIDs)
			if err != nil {
				return err
			}
			return a.message(msg, "Members assigned.")
		},
	}

	cmd.Flags().IntSliceVar(&userIDs, "user", nil, "user id to assign (repeatable)")
	return cmd
}

func (a *app) taskUnassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <project-id> <task-id> <user-id>",
		Short: "Remove a member from a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			userID, err := parseID(args[2], "user id")
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().RemoveMember(c.Context(), projectID, taskID, userID)
			if err != nil {
				return err
			}
			return a.message(msg, "Member removed from task.")
		},
	}
}

func (a *app) taskCommentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Manage a task's comments",
	}

	var addContent string
	add := &cobra.Command{
		Use:   "add <project-id> <task-id>",
		Short: "Comment on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			if addContent == "" {
				return errors.New("--content is required")
			}
			msg, err := a.client.Tasks().AddComment(c.Context(), projectID, taskID, addContent)
			if err != nil {
				return err
			}
			return a.message(msg, "Comment added.")
		},
	}
	add.Flags().StringVar(&addContent, "content", "", "comment text")

	var editContent string
	edit := &cobra.Command{
		Use:   "edit <project-id> <task-id> <comment-id>",
		Short: "Edit a comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			commentID, err := parseID(args[2], "comment id")
			if err != nil {
				return err
			}
			if editContent == "" {
				return errors.New("--content is required")
			}
			msg, err := a.client.Tasks().UpdateComment(c.Context(), projectID, taskID, commentID, editContent)
			if err != nil {
				return err
			}
			return a.message(msg, "Comment updated.")
		},
	}
	edit.Flags().StringVar(&editContent, "content", "", "new comment text")

	del := &cobra.Command{
		Use:   "delete <project-id> <task-id> <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			commentID, err := parseID(args[2], "comment id")
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().DeleteComment(c.Context(), projectID, taskID, commentID)
			if err != nil {
				return err
			}
			return a.message(msg, "Comment deleted.")
		},
	}

	cmd.AddCommand(add, edit, del)
	return cmd
}

func (a *app) taskTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Attach and detach project tags on a task",
	}

	attach := &cobra.Command{
		Use:   "attach <project-id> <task-id> <tag-id>",
		Short: "Attach a tag to a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			tagID, err := parseID(args[2], "tag id")
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().AttachTag(c.Context(), projectID, taskID, tagID)
			if err != nil {
				return err
			}
			return a.message(msg, "Tag attached.")
		},
	}

	detach := &cobra.Command{
		Use:   "detach <project-id> <task-id> <tag-id>",
		Short: "Detach a tag from a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			tagID, err := parseID(args[2], "tag id")
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().DetachTag(c.Context(), projectID, taskID, tagID)
			if err != nil {
				return err
			}
			return a.message(msg, "Tag detached.")
		},
	}

	cmd.AddCommand(attach, detach)
	return cmd
}

func (a *app) taskAttachmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachments",
		Short: "Manage a task's file attachments",
	}

	var outPath string
	download := &cobra.Command{
		Use:   "download <project-id> <task-id> <attachment-id>",
		Short: "Download an attachment",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			attachmentID, err := parseID(args[2], "attachment id")
			if err != nil {
				return err
			}
			if outPath == "" {
				return errors.New("--out is required")
			}

			body, err := a.client.Tasks().DownloadAttachment(c.Context(), projectID, taskID, attachmentID)
			if err != nil {
				return err
			}
			defer body.Close()

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			written, copyErr := io.Copy(file, body)
			if closeErr := file.Close(); copyErr == nil {
				copyErr = closeErr
			}
			if copyErr != nil {
				return fmt.Errorf("write %s: %w", outPath, copyErr)
			}
			_, err = fmt.Fprintf(a.out, "Wrote %d bytes to %s\n", written, outPath)
			return err
		},
	}
	download.Flags().StringVar(&outPath, "out", "", "destination file")

	upload := &cobra.Command{
		Use:   "upload <project-id> <task-id> <file>",
		Short: "Upload a file as an attachment",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}

			file, err := os.Open(args[2])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[2], err)
			}
			defer file.Close()

			msg, err := a.client.Tasks().UploadAttachment(c.Context(), projectID, taskID, filepath.Base(args[2]), file)
			if err != nil {
				return err
			}
			return a.message(msg, "Attachment uploaded.")
		},
	}

	del := &cobra.Command{
		Use:   "delete <project-id> <task-id> <attachment-id>",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.require(nav.ViewTaskDetail); err != nil {
				return err
			}
			projectID, taskID, err := parseProjectTask(args)
			if err != nil {
				return err
			}
			attachmentID, err := parseID(args[2], "attachment id")
			if err != nil {
				return err
			}
			msg, err := a.client.Tasks().DeleteAttachment(c.Context(), projectID, taskID, attachmentID)
			if err != nil {
				return err
			}
			return a.message(msg, "Attachment deleted.")
		},
	}

	cmd.AddCommand(download, upload, del)
	return cmd
}

func parseProjectTask(args []string) (projectID, taskID int, err error) {
	projectID, err = parseID(args[0], "project id")
	if err != nil {
		return 0, 0, err
	}
	taskID, err = parseID(args[1], "task id")
	if err != nil {
		return 0, 0, err
	}
	return projectID, taskID, nil
}
