package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/runner"
	"github.com/olimci/frontkit/pkg/steps"
)

const manifest = `{
  "name": "app",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build"
  }
}
`

const index = `<!doctype html>
<html lang="en">
  <head>
    <title>Vite + React + TS</title>
  </head>
  <body>
    <div id="root"></div>
  </body>
</html>
`

const entry = `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import App from './App.tsx'

createRoot(document.getElementById('root')!).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`

func resolve(t *testing.T, a project.Answers) project.Record {
	t.Helper()
	rec, err := project.Resolve(a)
	if err != nil {
		t.Fatalf("Resolve(%+v): %v", a, err)
	}
	return rec
}

func isScaffold(cmd runner.Command) bool {
	return len(cmd.Args) > 0 && cmd.Args[0] == "create"
}

// scaffolder responds to the scaffold command by writing files into the
// project directory; every other command succeeds.
func scaffolder(t *testing.T, name string, files map[string]string) func(string, runner.Command) (runner.Result, error) {
	return func(workdir string, cmd runner.Command) (runner.Result, error) {
		if !isScaffold(cmd) {
			return runner.Result{}, nil
		}
		for rel, content := range files {
			path := filepath.Join(workdir, name, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		return runner.Result{Output: []byte("scaffolded\n")}, nil
	}
}

type recordingVCS struct {
	dirs []string
	err  error
}

func (v *recordingVCS) Commit(_ context.Context, dir, _ string) error {
	v.dirs = append(v.dirs, dir)
	return v.err
}

func TestRunTargetExists(t *testing.T) {
	workdir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workdir, "app"), 0o755); err != nil {
		t.Fatal(err)
	}

	fake := &runner.Fake{}
	g := New(WithRunner(fake), WithWorkdir(workdir))

	report, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("Run() error = %v, want ErrTargetExists", err)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("Run() spawned %v", fake.Lines())
	}
	if diff := cmp.Diff([]State{Init, Failed}, report.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScaffoldFailure(t *testing.T) {
	fake := &runner.Fake{
		Respond: func(string, runner.Command) (runner.Result, error) {
			return runner.Result{ExitCode: 1, Output: []byte("npm ERR! could not resolve\n")}, nil
		},
	}
	g := New(WithRunner(fake), WithWorkdir(t.TempDir()))

	report, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("Run() error = %v, want ErrExternalTool", err)
	}

	var tool *ExternalToolError
	if !errors.As(err, &tool) {
		t.Fatalf("Run() error = %T, want *ExternalToolError", err)
	}
	if tool.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", tool.ExitCode)
	}
	if string(tool.Output) != "npm ERR! could not resolve\n" {
		t.Errorf("Output = %q", tool.Output)
	}
	if !strings.HasPrefix(tool.Cmd, "npm create vite@latest app") {
		t.Errorf("Cmd = %q", tool.Cmd)
	}
	if len(fake.Calls) != 1 {
		t.Errorf("calls = %v, want only the scaffold command", fake.Lines())
	}
	if diff := cmp.Diff([]State{Init, Acquiring, Failed}, report.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScaffoldStartFailure(t *testing.T) {
	fake := &runner.Fake{
		Respond: func(string, runner.Command) (runner.Result, error) {
			return runner.Result{ExitCode: -1}, errors.New("executable file not found")
		},
	}
	g := New(WithRunner(fake), WithWorkdir(t.TempDir()))

	_, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("Run() error = %v, want ErrExternalTool", err)
	}
	if !strings.Contains(err.Error(), "executable file not found") {
		t.Errorf("error %q does not carry the cause", err)
	}
}

func TestRunScaffoldCreatesNothing(t *testing.T) {
	fake := &runner.Fake{}
	g := New(WithRunner(fake), WithWorkdir(t.TempDir()))

	_, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("Run() error = %v, want ErrExternalTool", err)
	}
}

func TestRunInstallHint(t *testing.T) {
	seed := scaffolder(t, "my app", map[string]string{"package.json": manifest})
	fake := &runner.Fake{
		Respond: func(workdir string, cmd runner.Command) (runner.Result, error) {
			if isScaffold(cmd) {
				return seed(workdir, cmd)
			}
			return runner.Result{ExitCode: 1, Output: []byte("ERESOLVE\n")}, nil
		},
	}
	g := New(WithRunner(fake), WithWorkdir(t.TempDir()))

	report, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "my app", UI: "tailwind"}))

	var tool *ExternalToolError
	if !errors.As(err, &tool) {
		t.Fatalf("Run() error = %v, want *ExternalToolError", err)
	}

	want := "cd 'my app' && " + report.Plan.Commands[0].String()
	if tool.Hint != want {
		t.Errorf("Hint = %q, want %q", tool.Hint, want)
	}
	if !strings.HasPrefix(tool.Hint, "cd 'my app' && npm install ") {
		t.Errorf("Hint = %q, want an npm install", tool.Hint)
	}
	if diff := cmp.Diff([]State{Init, Acquiring, Installing, Failed}, report.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMissingEntryContinues(t *testing.T) {
	workdir := t.TempDir()
	fake := &runner.Fake{
		Respond: scaffolder(t, "app", map[string]string{
			"package.json": manifest,
			"index.html":   index,
		}),
	}
	collector := events.NewCollector(nil)
	vcs := &recordingVCS{}
	g := New(
		WithRunner(fake),
		WithWorkdir(workdir),
		WithEventHandler(collector),
		WithVCS(vcs),
	)

	report, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := []State{Init, Acquiring, Installing, Mutating, Finalizing, Done}
	if diff := cmp.Diff(want, report.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}

	skipped := report.Skipped()
	if len(skipped) != 1 || skipped[0].ID != steps.IDEntry {
		t.Fatalf("skipped = %+v, want only the entry step", skipped)
	}
	if !collector.HasLevel(events.Warning) {
		t.Error("expected a warning for the skipped entry step")
	}

	data, err := os.ReadFile(filepath.Join(workdir, "app", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, steps.MetadataKey+".configuration.name").String(); got != "app" {
		t.Errorf("stored name = %q, want app", got)
	}
	if _, err := os.Stat(filepath.Join(workdir, "app", ".env")); err != nil {
		t.Errorf(".env not written: %v", err)
	}

	if !report.Committed || len(vcs.dirs) != 1 {
		t.Errorf("commit = %v %v, want one commit", report.Committed, vcs.dirs)
	}
}

func TestRunCommitFailureIsNotFatal(t *testing.T) {
	fake := &runner.Fake{
		Respond: scaffolder(t, "app", map[string]string{
			"package.json": manifest,
			"index.html":   index,
			"src/main.tsx": entry,
		}),
	}
	g := New(
		WithRunner(fake),
		WithWorkdir(t.TempDir()),
		WithVCS(&recordingVCS{err: errors.New("no git")}),
	)

	report, err := g.Run(context.Background(), resolve(t, project.Answers{Name: "app"}))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if report.Committed {
		t.Error("Committed = true after a failed commit")
	}
	if report.State() != Done {
		t.Errorf("State() = %v, want done", report.State())
	}
	if len(report.Skipped()) != 0 {
		t.Errorf("skipped = %+v", report.Skipped())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fake := &runner.Fake{
		Respond: func(string, runner.Command) (runner.Result, error) {
			cancel()
			return runner.Result{ExitCode: -1}, context.Canceled
		},
	}
	g := New(WithRunner(fake), WithWorkdir(t.TempDir()))

	report, err := g.Run(ctx, resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if report.State() != Failed {
		t.Errorf("State() = %v, want failed", report.State())
	}
}

func TestReapply(t *testing.T) {
	dir := t.TempDir()
	for rel, content := range map[string]string{
		"package.json": manifest,
		"index.html":   index,
		"src/main.tsx": entry,
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fake := &runner.Fake{}
	g := New(WithRunner(fake))
	rec := resolve(t, project.Answers{Name: "app", UI: "tailwind"})

	if _, err := g.Reapply(context.Background(), dir, rec); err != nil {
		t.Fatalf("Reapply() unexpected error: %v", err)
	}
	second, err := g.Reapply(context.Background(), dir, rec)
	if err != nil {
		t.Fatalf("second Reapply() unexpected error: %v", err)
	}

	for _, res := range second.Steps {
		if res.Status == steps.Applied {
			t.Errorf("step %s applied twice", res.ID)
		}
	}
	if len(fake.Calls) != 0 {
		t.Errorf("Reapply spawned %v", fake.Lines())
	}
}

func TestReapplyMissingDir(t *testing.T) {
	g := New()
	_, err := g.Reapply(context.Background(), filepath.Join(t.TempDir(), "nope"), resolve(t, project.Answers{Name: "app"}))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Reapply() error = %v, want ErrNotExist", err)
	}
}
