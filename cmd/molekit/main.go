// Package main provides the entry point for the molekit CLI.
package main

import (
	"context"
	"os"

	"github.com/molekit/molekit/internal/cli"
	"github.com/molekit/molekit/internal/signal"
)

// Build information set via ldflags.
var (
	version = "dev"     //nolint:gochecknoglobals // set by -ldflags
	commit  = "none"    //nolint:gochecknoglobals // set by -ldflags
	date    = "unknown" //nolint:gochecknoglobals // set by -ldflags
)

func main() {
	os.Exit(run())
}

// run executes the CLI and maps the outcome to a process exit code.
// Separated from main so deferred cleanup runs before os.Exit.
func run() int {
	handler := signal.NewHandler(context.Background())
	defer handler.Stop()
	defer cli.CloseLogFile()

	err := cli.Execute(handler.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if handler.WasInterrupted() {
		return cli.ExitInterrupt
	}
	return cli.ExitCodeForError(err)
}
