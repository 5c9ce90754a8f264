package generate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTargetExists = errors.New("target directory already exists")
	ErrExternalTool = errors.New("external tool failed")
)

// ExternalToolError reports a scaffold or install command that did not
// succeed. Output is the process output exactly as captured.
type ExternalToolError struct {
	Cmd      string
	ExitCode int
	Output   []byte
	// Hint is a command the user can run by hand to finish the job.
	Hint string
	// Err is set when the process could not be started at all.
	Err error
}

func (e *ExternalToolError) Error() string {
	var b strings.Builder
	if e.Err != nil {
		fmt.Fprintf(&b, "%s: %v", e.Cmd, e.Err)
	} else {
		fmt.Fprintf(&b, "%s: exit status %d", e.Cmd, e.ExitCode)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, " (run manually: %s)", e.Hint)
	}
	return b.String()
}

func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
