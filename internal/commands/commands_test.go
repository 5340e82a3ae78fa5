package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tasktracker/internal/commands"
	"tasktracker/internal/config"
	"tasktracker/internal/service"
	"tasktracker/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout string, err error) {
	t.Helper()

	var outBuf bytes.Buffer

	cfg := &config.Config{
		StorePath: "tasks.json",
		Quiet:     quiet,
	}

	ctx := context.Background()
	if svc == nil {
		err = cmd.Run(ctx, cfg, nil, args, &outBuf)
	} else {
		err = cmd.Run(ctx, cfg, svc, args, &outBuf)
	}
	return outBuf.String(), err
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, err := runCommand(t, cmd, nil, nil, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "task-tracker 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, err := runCommand(t, cmd, nil, nil, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.Golden(t, "help", stdout)
}

func TestHelpCommand_ListsEveryCommand(t *testing.T) {
	stdout, _ := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	for _, cmd := range commands.DefaultRegistry.All() {
		if !strings.Contains(stdout, cmd.Usage()) {
			t.Errorf("help output is missing %q", cmd.Usage())
		}
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy milk"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "Task added successfully (ID:1)\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Description != "Buy milk" || tasks[0].Status != service.StatusTodo {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestAddCommand_JoinsWords(t *testing.T) {
	svc := testutil.NewFakeService()

	_, err := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "oat", "milk"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.Tasks()[0].Description; got != "Buy oat milk" {
		t.Errorf("expected %q, got %q", "Buy oat milk", got)
	}
}

func TestAddCommand_NextIDAfterExisting(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(4, "Existing", service.StatusDone)

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, []string{"New"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "Task added successfully (ID:5)\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {"   "}} {
		svc := testutil.NewFakeService()

		stdout, err := runCommand(t, &commands.AddCmd{}, svc, args, false)

		if service.KindOf(err) != service.KindUser {
			t.Errorf("args %q: expected user error, got %v", args, err)
		}
		if !errors.Is(err, service.ErrEmptyDescription) {
			t.Errorf("args %q: expected ErrEmptyDescription, got %v", args, err)
		}
		if stdout != "" {
			t.Errorf("args %q: expected no stdout, got %q", args, stdout)
		}
		if svc.Saves != 0 {
			t.Errorf("args %q: expected no save, got %d", args, svc.Saves)
		}
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy milk"}, true)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
	if len(svc.Tasks()) != 1 {
		t.Error("expected task to be added in quiet mode")
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddErr = service.IOError("writing tasks.json", errors.New("disk full"))

	_, err := runCommand(t, &commands.AddCmd{}, svc, []string{"x"}, false)

	if service.KindOf(err) != service.KindIO {
		t.Errorf("expected io error, got %v", err)
	}
}

// Tests for update command
func TestUpdateCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusTodo)

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, []string{"1", "Buy oat milk"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "Task updated successfully!\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	task := svc.Tasks()[0]
	if task.Description != "Buy oat milk" {
		t.Errorf("expected updated description, got %q", task.Description)
	}
	if task.UpdatedAt != service.FormatTimestamp(testutil.FixedTime) {
		t.Errorf("expected updatedAt to be set, got %q", task.UpdatedAt)
	}
}

func TestUpdateCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusTodo)
	before := svc.Tasks()

	_, err := runCommand(t, &commands.UpdateCmd{}, svc, []string{"9", "Nope"}, false)

	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if after := svc.Tasks(); after[0] != before[0] || len(after) != len(before) {
		t.Errorf("collection changed: %+v", after)
	}
}

func TestUpdateCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing id", nil},
		{"non-numeric id", []string{"abc", "text"}},
		{"missing description", []string{"1"}},
		{"blank description", []string{"1", "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.AddTask(1, "Buy milk", service.StatusTodo)

			_, err := runCommand(t, &commands.UpdateCmd{}, svc, tt.args, false)

			if service.KindOf(err) != service.KindUser {
				t.Errorf("expected user error, got %v", err)
			}
			if svc.Saves != 0 {
				t.Errorf("expected no save, got %d", svc.Saves)
			}
		})
	}
}

// Tests for delete command
func TestDeleteCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "a", service.StatusTodo)
	svc.AddTask(2, "b", service.StatusTodo)
	svc.AddTask(3, "c", service.StatusTodo)

	stdout, err := runCommand(t, &commands.DeleteCmd{}, svc, []string{"2"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "Task 2 removed successfully!\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	tasks := svc.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.DeleteCmd{}, svc, []string{"1"}, false)

	if service.KindOf(err) != service.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
	if err == nil || err.Error() != "task with ID 1 not found" {
		t.Errorf("unexpected error text %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
}

// Tests for mark commands
func TestMarkCommands(t *testing.T) {
	tests := []struct {
		cmd  *commands.MarkCmd
		name string
		want service.Status
	}{
		{commands.NewMarkCmd(service.StatusInProgress), "mark-in-progress", service.StatusInProgress},
		{commands.NewMarkCmd(service.StatusDone), "mark-done", service.StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Name() != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, tt.cmd.Name())
			}

			svc := testutil.NewFakeService()
			svc.AddTask(1, "Buy milk", service.StatusTodo)

			stdout, err := runCommand(t, tt.cmd, svc, []string{"1"}, false)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != "Task 1 status updated successfully.\n" {
				t.Errorf("unexpected output %q", stdout)
			}
			task := svc.Tasks()[0]
			if task.Status != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, task.Status)
			}
			if task.UpdatedAt == "" {
				t.Error("expected updatedAt to be set")
			}
		})
	}
}

func TestMarkCommand_InvalidID(t *testing.T) {
	svc := testutil.NewFakeService()

	_, err := runCommand(t, commands.NewMarkCmd(service.StatusDone), svc, []string{"one"}, false)

	if service.KindOf(err) != service.KindUser {
		t.Errorf("expected user error, got %v", err)
	}
}

// Tests for list command
func TestListCommand_AllTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusTodo)
	svc.AddTask(2, "Buy eggs", service.StatusDone)

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "ID: 1, Task: Buy milk, Status: todo\nID: 2, Task: Buy eggs, Status: done\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_FilterCaseInsensitive(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusTodo)
	svc.AddTask(2, "Buy eggs", service.StatusDone)

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, []string{"DONE"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "ID: 2, Task: Buy eggs, Status: done\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "No tasks available.\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestListCommand_EmptyFilterResult(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusDone)

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, []string{"todo"}, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "No tasks available.\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestListCommand_InvalidStatus(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", service.StatusTodo)

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, []string{"finished"}, false)

	if service.KindOf(err) != service.KindUser {
		t.Errorf("expected user error, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"add", "ADD", "Mark-Done", "LIST"} {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if _, ok := commands.DefaultRegistry.Find("remove"); ok {
		t.Error("expected unknown command to be missing")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
