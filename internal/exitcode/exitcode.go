// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the loop ended through the exit command or end of input.
	Success = 0

	// InputError indicates standard input could not be read.
	InputError = 1
)
