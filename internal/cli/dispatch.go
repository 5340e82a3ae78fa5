package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasktracker/internal/commands"
	"tasktracker/internal/config"
	"tasktracker/internal/exitcode"
	"tasktracker/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Failures are reported on errOut and never change the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> print usage
	if len(args) == 0 {
		args = []string{"help"}
	}

	cmdName := args[0]
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(out, "Command \"%s\" is unknown.\n", cmdName)
		return exitcode.Success
	}

	if err := d.dispatchCommand(ctx, cmd, args[1:], out, errOut); err != nil {
		report(errOut, cmd, err)
	}
	return exitcode.Success
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) error {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var storePath string
	var quiet bool
	var debug bool

	fs.StringVar(&storePath, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return flagError(err)
	}

	cfg, err := config.New(storePath)
	if err != nil {
		return service.UserErrorf("%v", err)
	}
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug
	cfg.Logger = newLogger(errOut, cfg.Debug)
	cfg.Logger.Debug("dispatching command", "command", cmd.Name(), "file", cfg.StorePath)

	var svc service.Service
	if cmd.NeedsStore() {
		if d.factory == nil {
			return errors.New("no task store configured")
		}
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			return err
		}

		created, err := svc.EnsureExists(ctx)
		if err != nil {
			return err
		}
		if created && !cfg.Quiet {
			fmt.Fprintf(out, "Created new file: %s\n", cfg.StorePath)
		}
	}

	return cmd.Run(ctx, cfg, svc, positional, out)
}

// splitArgs picks the common flags out of args and returns the rest unchanged,
// so descriptions and ids starting with a dash reach the command as typed.
// Only names defined on fs count as flags; everything after "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flagArgs, append(positional, args[i+1:]...)
		}
		name, hasValue, ok := flagName(arg)
		f := fs.Lookup(name)
		if !ok || f == nil {
			positional = append(positional, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if hasValue || isBoolFlag(f) || i+1 == len(args) {
			continue
		}
		i++
		flagArgs = append(flagArgs, args[i])
	}
	return flagArgs, positional
}

// flagName parses "-name", "--name" and "--name=value".
func flagName(arg string) (name string, hasValue, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	name = strings.TrimPrefix(arg[1:], "-")
	if name == "" || name[0] == '-' {
		return "", false, false
	}
	name, _, hasValue = strings.Cut(name, "=")
	return name, hasValue, true
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// flagError turns a flag package error into a user error.
func flagError(err error) error {
	errStr := err.Error()

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return service.UserErrorf("unknown flag: %s", flagName)
	}

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return service.UserErrorf("flag needs an argument: %s", flagName)
	}

	return service.UserErrorf("%s", errStr)
}

// newLogger returns a text logger on w. Debug records are dropped unless debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
