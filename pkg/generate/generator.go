package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
	"github.com/olimci/frontkit/pkg/deps"
	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/runner"
	"github.com/olimci/frontkit/pkg/scaffold"
	"github.com/olimci/frontkit/pkg/steps"
)

// Report describes a generation run, successful or not.
type Report struct {
	Record project.Record
	Plan   deps.Plan
	Dir    string
	// States is every state entered, in order.
	States  []State
	Overlay *scaffold.Result
	Steps   []steps.StepResult
	// Committed is true when the finished tree was committed.
	Committed bool
}

// State is the last state entered.
func (r *Report) State() State {
	if len(r.States) == 0 {
		return Init
	}
	return r.States[len(r.States)-1]
}

// Skipped returns the mutation steps skipped on a failed precondition.
func (r *Report) Skipped() []steps.StepResult {
	return (&steps.Report{Results: r.Steps}).Skipped()
}

type Generator struct {
	opts *options
}

func New(opts ...Option) *Generator {
	o := defaultOptions().apply(opts...)
	if o.handler == nil {
		o.handler = events.Noop
	}
	if o.publisher.IsZero() {
		o.publisher = defaultOptions().publisher
	}

	return &Generator{opts: o}
}

// Plan returns the commands Run would execute for rec, without running them.
func (g *Generator) Plan(rec project.Record) deps.Plan {
	return deps.NewPlan(rec, g.opts.manager)
}

// Steps returns the mutation steps Run would apply for rec.
func (g *Generator) Steps(rec project.Record) []steps.Step {
	return steps.Build(rec, steps.Options{
		Publisher: g.opts.publisher,
		DevServer: g.opts.devServer,
		Version:   g.opts.version,
	})
}

// Run creates a new project for rec in the working directory. The project
// directory must not exist. External tool failures are returned as
// *ExternalToolError; mutation precondition failures are only reported.
func (g *Generator) Run(ctx context.Context, rec project.Record) (*Report, error) {
	report := &Report{
		Record: rec,
		Plan:   g.Plan(rec),
		Dir:    filepath.Join(g.opts.workdir, rec.Name),
	}

	g.enter(report, Init)
	if taken(report.Dir) {
		return report, g.fail(report, fmt.Errorf("%w: %s", ErrTargetExists, report.Dir))
	}

	g.enter(report, Acquiring)
	if err := g.acquire(ctx, report); err != nil {
		return report, g.fail(report, err)
	}

	g.enter(report, Installing)
	if err := g.install(ctx, report); err != nil {
		return report, g.fail(report, err)
	}

	if err := g.Mutate(ctx, report); err != nil {
		return report, g.fail(report, err)
	}

	g.commit(ctx, report)

	g.enter(report, Done)
	return report, nil
}

// Reapply runs the mutation pipeline against an existing project at dir.
// No external tool is run and nothing is committed.
func (g *Generator) Reapply(ctx context.Context, dir string, rec project.Record) (*Report, error) {
	report := &Report{
		Record: rec,
		Plan:   g.Plan(rec),
		Dir:    dir,
	}

	g.enter(report, Init)
	if !taken(dir) {
		return report, g.fail(report, fmt.Errorf("project %s: %w", dir, os.ErrNotExist))
	}

	if err := g.Mutate(ctx, report); err != nil {
		return report, g.fail(report, err)
	}

	g.enter(report, Done)
	return report, nil
}

// Mutate applies both mutation phases to an existing project directory.
// It is used by Run and for re-applying a stored configuration.
func (g *Generator) Mutate(ctx context.Context, report *Report) error {
	all := g.Steps(report.Record)
	tree := steps.Tree{Root: report.Dir}

	phases := []struct {
		phase steps.Phase
		state State
	}{
		{steps.Mutating, Mutating},
		{steps.Finalizing, Finalizing},
	}

	for _, p := range phases {
		g.enter(report, p.state)

		res, err := steps.Apply(ctx, tree, steps.Filter(all, p.phase), g.opts.handler)
		if res != nil {
			report.Steps = append(report.Steps, res.Results...)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) acquire(ctx context.Context, report *Report) error {
	cmd := report.Plan.Scaffold
	if err := g.exec(ctx, g.opts.workdir, cmd, cmd.String()); err != nil {
		return err
	}

	if !taken(report.Dir) {
		return &ExternalToolError{
			Cmd:  cmd.String(),
			Hint: cmd.String(),
			Err:  fmt.Errorf("%s was not created", report.Dir),
		}
	}

	res, err := scaffold.Overlay(ctx, report.Dir, report.Record)
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}
	report.Overlay = res

	if len(res.Existing) > 0 {
		g.emit(events.Debug, fmt.Sprintf("kept %d existing files", len(res.Existing)))
	}

	return nil
}

func (g *Generator) install(ctx context.Context, report *Report) error {
	for _, cmd := range report.Plan.Commands {
		hint := "cd " + shellescape.Quote(report.Record.Name) + " && " + cmd.String()
		if err := g.exec(ctx, g.opts.workdir, cmd, hint); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) exec(ctx context.Context, workdir string, cmd runner.Command, hint string) error {
	g.emit(events.Debug, "running "+cmd.String())

	res, err := g.opts.runner.Run(ctx, workdir, cmd)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return &ExternalToolError{
			Cmd:      cmd.String(),
			ExitCode: res.ExitCode,
			Output:   res.Output,
			Hint:     hint,
			Err:      err,
		}
	}
	if res.ExitCode != 0 {
		return &ExternalToolError{
			Cmd:      cmd.String(),
			ExitCode: res.ExitCode,
			Output:   res.Output,
			Hint:     hint,
		}
	}

	return nil
}

// commit is best effort; a failure never fails the run.
func (g *Generator) commit(ctx context.Context, report *Report) {
	err := g.opts.vcs.Commit(ctx, report.Dir, g.opts.commitMessage)
	if err != nil {
		g.opts.handler.Handle(events.Event{
			Level:   events.Debug,
			Message: "skipping initial commit",
			Error:   err,
		})
		return
	}
	report.Committed = true
}

func (g *Generator) enter(report *Report, s State) {
	report.States = append(report.States, s)
	g.emit(events.Info, s.String())
}

func (g *Generator) fail(report *Report, err error) error {
	report.States = append(report.States, Failed)

	var tool *ExternalToolError
	if errors.As(err, &tool) && len(tool.Output) > 0 {
		g.emit(events.Debug, string(tool.Output))
	}
	g.opts.handler.Handle(events.Event{
		Level:   events.Error,
		Message: Failed.String(),
		Error:   err,
	})

	return err
}

func (g *Generator) emit(level events.Level, msg string) {
	g.opts.handler.Handle(events.Event{Level: level, Message: msg})
}

// Exists reports whether the project directory for name is already taken.
func Exists(workdir, name string) bool {
	return taken(filepath.Join(workdir, name))
}

func taken(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
