package runner

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "npm", Args: []string{"install", "react-router-dom@^7", "my lib"}}
	got := cmd.String()
	if !strings.HasPrefix(got, "npm install ") {
		t.Errorf("String() = %q, want npm install prefix", got)
	}
	if !strings.Contains(got, "'my lib'") {
		t.Errorf("String() = %q, want quoted argument", got)
	}
}

func TestExecCapturesOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	res, err := Exec{}.Run(context.Background(), t.TempDir(), Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err 1>&2; exit 3"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if out := string(res.Output); !strings.Contains(out, "out") || !strings.Contains(out, "err") {
		t.Errorf("Output = %q, want both streams", out)
	}
}

func TestExecMissingBinary(t *testing.T) {
	res, err := Exec{}.Run(context.Background(), t.TempDir(), Command{Name: "frontkit-no-such-binary"})
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
}
