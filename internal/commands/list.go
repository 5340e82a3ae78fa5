package commands

import (
	"context"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/output"
	"tasktracker/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `list` (all tasks) and `list <status>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally by status" }
func (c *ListCmd) Usage() string     { return config.AppName + " list [todo|in-progress|done]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	var status service.Status
	if len(args) > 0 {
		st, err := service.ParseStatus(args[0])
		if err != nil {
			return err
		}
		status = st
	}

	tasks, err := svc.List(ctx, status)
	if err != nil {
		return err
	}

	output.NewPrinter(out).Tasks(tasks)
	return nil
}
