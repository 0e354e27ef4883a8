package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskdeck/taskdeck/internal/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage keeps local errors verbatim and maps backend failures to
// their displayable message.
func errorMessage(err error) string {
	var appErr *api.AppError
	var statusErr *api.StatusError
	if errors.As(err, &appErr) || errors.As(err, &statusErr) {
		return api.DisplayMessage(err)
	}
	return err.Error()
}
