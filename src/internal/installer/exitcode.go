package installer

import "errors"

// ExitCode maps an error returned by Run to a process exit code.
// Unclassified errors map to CodeGeneric; nil maps to zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}

	return CodeGeneric
}
