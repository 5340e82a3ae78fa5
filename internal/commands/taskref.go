package commands

import (
	"strconv"
	"strings"

	"tasktracker/internal/service"
)

// ParseTaskID parses the task id from the first positional argument.
//
// Parsing rules:
// 1. No argument → error: task ID required
// 2. Surrounding whitespace is ignored
// 3. Anything but a positive base-10 integer → error: invalid task ID: <arg>
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, service.UserErrorf("task ID required")
	}

	raw := strings.TrimSpace(args[0])
	if !isAllDigits(raw) {
		return 0, service.UserErrorf("invalid task ID: %q (must be a positive number)", args[0])
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, service.UserErrorf("invalid task ID: %q (must be a positive number)", args[0])
	}
	return id, nil
}

// joinDescription joins the remaining arguments into one description so
// unquoted multi-word descriptions work. Quoted arguments pass through as is.
func joinDescription(args []string) string {
	return strings.Join(args, " ")
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
