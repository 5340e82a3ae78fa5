package commands

import (
	"context"
	"fmt"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return nil }
func (c *UpdateCmd) Synopsis() string  { return "Change a task description" }
func (c *UpdateCmd) Usage() string     { return config.AppName + ` update <id> "<description>"` }
func (c *UpdateCmd) NeedsStore() bool  { return true }

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}

	if _, err := svc.Update(ctx, id, joinDescription(args[1:])); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Task updated successfully!")
	}
	return nil
}
