package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, file errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Client not found, invoice not found, settings never seeded,
	// or any case where a resource ID does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Malformed backup files or input that cannot be decoded at all.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status values, non-positive quantities, negative rates,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// StatusError carries the process exit code for a failed command. Commands
// return it after reporting the failure; main passes Code to os.Exit.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code.
// Errors cobra raises before a command runs (unknown or missing flags,
// bad arguments) are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *StatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
