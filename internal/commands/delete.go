package commands

import (
	"context"
	"fmt"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return nil }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return config.AppName + " delete <id>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}

	if err := svc.Delete(ctx, id); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task %d removed successfully!\n", id)
	}
	return nil
}
