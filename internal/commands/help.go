package commands

import (
	"context"
	"fmt"
	"io"

	"tasktracker/internal/config"
	"tasktracker/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return config.AppName + " help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out io.Writer) error {
	fmt.Fprint(out, helpText)
	return nil
}

const helpText = `Usage:
  task-tracker add "<description>"                 Create a task
  task-tracker update <id> "<description>"         Change a task description
  task-tracker delete <id>                         Delete a task
  task-tracker mark-in-progress <id>               Mark a task in-progress
  task-tracker mark-done <id>                      Mark a task done
  task-tracker list [todo|in-progress|done]        List tasks, optionally by status
  task-tracker help                                Print usage
  task-tracker version                             Print version

Commands are case-insensitive. Tasks are stored in ./tasks.json.

Common flags (after the command):
  --file <path>    Use another task file (env TASK_TRACKER_FILE)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --               Treat the remaining arguments as text, e.g. add -- "--quiet"

Examples:
  task-tracker add "Buy groceries"
  task-tracker update 1 "Buy groceries and cook dinner"
  task-tracker mark-in-progress 1
  task-tracker mark-done 1
  task-tracker list done
  task-tracker delete 1
`
