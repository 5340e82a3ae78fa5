// Package exitcode defines exit codes for the CLI.
package exitcode

// Success is the only exit code the CLI uses. Failures are reported on
// stderr and never change the exit status.
const Success = 0
