// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty description, task number out of range).
	UserError = 1

	// ConfigError indicates an unreadable or malformed config file.
	ConfigError = 2

	// IOError indicates a failure reading from or writing to the terminal.
	IOError = 3

	// Interrupted indicates the session was ended by SIGINT or SIGTERM (128+SIGINT).
	Interrupted = 130
)
