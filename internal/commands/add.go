package commands

import (
	"context"
	"fmt"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return config.AppName + ` add "<description>"` }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	task, err := svc.Add(ctx, joinDescription(args))
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task added successfully (ID:%d)\n", task.ID)
	}
	return nil
}
