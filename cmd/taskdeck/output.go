package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// renderJSON writes v as indented JSON, optionally filtered through a
// JMESPath expression. The expression sees the wire-level field names.
func renderJSON(w io.Writer, v any, query string) error {
	if query != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode output: %w", err)
		}
		v, err = jmespath.Search(query, doc)
		if err != nil {
			return fmt.Errorf("apply query %q: %w", query, err)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// structured reports whether output should bypass the human tables.
func (a *app) structured() bool {
	return a.jsonOut || a.query != ""
}

// render emits v as JSON respecting the persistent output flags.
func (a *app) render(v any) error {
	return renderJSON(a.out, v, a.query)
}

// message prints a plain line unless structured output was requested,
// in which case the backend envelope is emitted instead.
func (a *app) message(msg model.StatusMessage, fallback string) error {
	if a.structured() {
		return a.render(msg)
	}
	line := msg.Message
	if line == "" {
		line = fallback
	}
	_, err := fmt.Fprintln(a.out, line)
	return err
}

func (a *app) projectTable(projects []model.Project) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tCREATOR\tMEMBERS")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Status, p.CreatorName, len(p.Members))
	}
	return tw.Flush()
}

func (a *app) taskTable(tasks []model.Task) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tDEADLINE\tASSIGNEES")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Status, t.Deadline, len(t.Members))
	}
	return tw.Flush()
}

func (a *app) userTable(users []auth.UserProfile) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return tw.Flush()
}

func (a *app) tagTable(tags []model.Tag) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATOR")
	for _, t := range tags {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, t.Creator)
	}
	return tw.Flush()
}
