package main

import (
	"github.com/spf13/cobra"
)

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Project and task management from the terminal",
		Long: `taskdeck is a client for the Taskdeck backend.

It keeps one login session per terminal context, so two shells can be
logged in as different accounts at the same time. Any request the
backend rejects as unauthorized ends the session and the next command
asks you to log in again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "emit raw JSON instead of tables")
	root.PersistentFlags().StringVarP(&a.query, "query", "q", "", "JMESPath expression applied to the JSON output")

	root.AddCommand(
		a.authCmd(),
		a.projectsCmd(),
		a.tasksCmd(),
		a.usersCmd(),
	)
	return root
}
