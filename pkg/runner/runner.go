package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"al.essio.dev/pkg/shellescape"
)

// Command is an external program invocation. Dir is relative to the
// directory the runner is pointed at; empty means that directory itself.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command as it would be typed into a shell.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Result is the outcome of a finished command. Output holds stdout and
// stderr interleaved, exactly as the process wrote them.
type Result struct {
	ExitCode int
	Output   []byte
}

// Runner executes external commands to completion.
type Runner interface {
	Run(ctx context.Context, workdir string, cmd Command) (Result, error)
}

// Exec runs commands as child processes.
type Exec struct {
	// Echo receives a copy of the process output as it is written.
	Echo io.Writer
}

func (e Exec) Run(ctx context.Context, workdir string, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = workdir
	if cmd.Dir != "" {
		c.Dir = joinDir(workdir, cmd.Dir)
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if e.Echo != nil {
		out = io.MultiWriter(&buf, e.Echo)
	}
	c.Stdout = out
	c.Stderr = out

	err := c.Run()
	res := Result{Output: buf.Bytes()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		res.ExitCode = -1
		return res, fmt.Errorf("run %s: %w", cmd, err)
	}
}
