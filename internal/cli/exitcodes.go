package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, a non-positive --limit,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown week option, unknown booking reference.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A booking row that cannot be read back.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unparseable start dates, non-positive week counts.
	ExitValidation = 5

	// ExitCancelled indicates the user backed out of an interactive prompt.
	ExitCancelled = 130
)

// CodedError is a command failure that has already been reported to the
// user and carries the process exit code
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err; nil is ExitSuccess
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}
