package commands

import (
	"context"
	"fmt"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func init() {
	Register(NewMarkCmd(service.StatusInProgress))
	Register(NewMarkCmd(service.StatusDone))
}

// MarkCmd implements the status transition commands. The target status is
// fixed by the command name.
type MarkCmd struct {
	name   string
	status service.Status
}

// NewMarkCmd returns the command that moves a task to status.
func NewMarkCmd(status service.Status) *MarkCmd {
	return &MarkCmd{name: "mark-" + string(status), status: status}
}

func (c *MarkCmd) Name() string      { return c.name }
func (c *MarkCmd) Aliases() []string { return nil }
func (c *MarkCmd) Synopsis() string  { return fmt.Sprintf("Mark a task %s", c.status) }
func (c *MarkCmd) Usage() string     { return config.AppName + " " + c.name + " <id>" }
func (c *MarkCmd) NeedsStore() bool  { return true }

func (c *MarkCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}

	if _, err := svc.SetStatus(ctx, id, c.status); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task %d status updated successfully.\n", id)
	}
	return nil
}
