package errors

// Process exit codes form the CLI contract: success is 0 regardless of how
// many findings a run produced; only failures change the status

const (
	// ExitOK is returned on success, including zero-finding runs
	ExitOK = 0

	// ExitUsage is returned for bad configuration
	ExitUsage = 2

	// ExitInputFile is returned for missing or unreadable input files
	ExitInputFile = 3

	// ExitSchema is returned for schema/data validation failures
	ExitSchema = 4

	// ExitInternal is returned for engine defects and unclassified errors
	ExitInternal = 5
)

// ExitCodeOf turns an ErrorCode into a process exit code
func ExitCodeOf(c ErrorCode) int {
	switch c {
	case ErrorCodeUsage, ErrorCodeValidation:
		return ExitUsage
	case ErrorCodeInputFile:
		return ExitInputFile
	case ErrorCodeSchema:
		return ExitSchema
	case ErrorCodeInternal, ErrorCodePanic, ErrorCodeUnknown, ErrorCodeJSON, ErrorCodeNotFound:
		return ExitInternal
	default:
		return ExitInternal
	}
}

// ExitCode returns the mapped exit code for any error, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitCodeOf(CodeOf(err))
}
