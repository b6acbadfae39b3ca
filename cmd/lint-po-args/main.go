package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/BenWiederhake/lint-po-args/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	// Preserve the `lint-po-args [flags] <catalog.po>...` shorthand:
	// prepend "check" when no subcommand is specified.
	args := os.Args[1:]
	if cmd.NeedsDefaultCheck(rootCmd, args) {
		args = append([]string{"check"}, args...)
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
