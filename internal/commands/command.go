// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes the task file.
	// Commands like help and version return false.
	NeedsStore() bool

	// Run executes the command.
	// cfg is always provided (store path, output settings).
	// svc is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Success output goes to out; failures are returned for the caller to report.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error
}
