// Package cli parses the command line, runs commands and reports their failures.
package cli

import (
	"fmt"
	"io"

	"tasktracker/internal/commands"
	"tasktracker/internal/service"
)

// report renders a failed command on w. It is the only place errors are printed.
func report(w io.Writer, cmd commands.Command, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	switch service.KindOf(err) {
	case service.KindUser:
		fmt.Fprintf(w, "usage: %s\n", cmd.Usage())
	case service.KindParse:
		fmt.Fprintln(w, "hint: fix the file by hand or move it away to start over")
	}
}
