// Package main is the entry point for the task-tracker CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"tasktracker/internal/backend/jsonfile"
	"tasktracker/internal/cli"
	"tasktracker/internal/commands"
	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return jsonfile.New(afero.NewOsFs(), cfg.StorePath, jsonfile.WithLogger(cfg.Logger)), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
