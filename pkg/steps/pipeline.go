package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/utils/fileutils"
)

type Status uint8

const (
	Applied Status = iota
	Unchanged
	Skipped
	Removed
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Skipped:
		return "skipped"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

type StepResult struct {
	ID      StepID
	Target  string
	Status  Status
	Removed []string
	// Reason is set for skipped steps.
	Reason error
}

type Report struct {
	Results []StepResult
}

func (r *Report) Skipped() []StepResult {
	var out []StepResult
	for _, res := range r.Results {
		if res.Status == Skipped {
			out = append(out, res)
		}
	}
	return out
}

// Changed reports whether any step touched the tree.
func (r *Report) Changed() bool {
	for _, res := range r.Results {
		if res.Status == Applied || res.Status == Removed {
			return true
		}
	}
	return false
}

// Apply runs steps in order against tree. A step whose precondition fails is
// skipped with a warning. Any other error stops the pipeline; the report
// holds the results of the steps that ran before it.
func Apply(ctx context.Context, tree Tree, steps []Step, handler events.Handler) (*Report, error) {
	if handler == nil {
		handler = events.Noop
	}

	report := &Report{Results: make([]StepResult, 0, len(steps))}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := applyStep(tree, step)
		if err != nil {
			handler.Handle(events.Event{Level: events.Error, Step: step.ID.String(), Message: "step failed", Error: err})
			return report, fmt.Errorf("step %s: %w", step.ID, err)
		}
		report.Results = append(report.Results, res)

		switch res.Status {
		case Skipped:
			handler.Handle(events.Event{Level: events.Warning, Step: step.ID.String(), Message: "skipped " + step.Target, Error: res.Reason})
		default:
			handler.Handle(events.Event{Level: events.Debug, Step: step.ID.String(), Message: res.Status.String() + " " + step.Target})
		}
	}

	return report, nil
}

func applyStep(tree Tree, step Step) (StepResult, error) {
	res := StepResult{ID: step.ID, Target: step.Target}

	current, exists, err := tree.Read(step.Target)
	if err != nil {
		return res, err
	}

	if step.Require == MustExist && !exists {
		res.Status = Skipped
		res.Reason = precondition("%s does not exist", step.Target)
		return res, nil
	}

	input, inputExists := current, exists
	if step.Source != "" {
		if input, inputExists, err = tree.Read(step.Source); err != nil {
			return res, err
		}
	}

	next, err := step.Edit(input, inputExists)
	if errors.Is(err, ErrPrecondition) {
		res.Status = Skipped
		res.Reason = err
		return res, nil
	} else if err != nil {
		return res, err
	}

	changed, err := fileutils.AtomicEdit(tree.Path(step.Target), next)
	if err != nil {
		return res, err
	}

	for _, rel := range step.Remove {
		ok, err := tree.Remove(rel)
		if err != nil {
			return res, err
		}
		if ok {
			res.Removed = append(res.Removed, rel)
		}
	}

	switch {
	case changed:
		res.Status = Applied
	case len(res.Removed) > 0:
		res.Status = Removed
	default:
		res.Status = Unchanged
	}
	return res, nil
}
