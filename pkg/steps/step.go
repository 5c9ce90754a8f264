package steps

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks a step that cannot run against the current tree.
// The step is skipped with a warning; the pipeline carries on.
var ErrPrecondition = errors.New("precondition not met")

type StepID struct {
	Owner string
	Name  string
	Sub   string
}

func (s StepID) String() string {
	if s.Sub == "" {
		return fmt.Sprintf("%s:%s", s.Owner, s.Name)
	}
	return fmt.Sprintf("%s:%s:%s", s.Owner, s.Name, s.Sub)
}

// Precondition states what a step expects of its target before editing.
type Precondition uint8

const (
	MayBeAbsent Precondition = iota
	MustExist
)

// Phase is the part of a run a step belongs to.
type Phase uint8

const (
	Mutating Phase = iota
	Finalizing
)

func (p Phase) String() string {
	switch p {
	case Mutating:
		return "mutating"
	case Finalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// EditFunc computes the next content of a target from its current content.
// It must be pure: the same input always yields the same output, and applying
// it to its own output changes nothing.
type EditFunc func(current []byte, exists bool) ([]byte, error)

// Step is a single file mutation. Target, Source and Remove are
// slash-separated paths relative to the project root.
type Step struct {
	ID     StepID
	Phase  Phase
	Target string
	// Source, when set, is read instead of Target and its content is passed
	// to Edit. The result is still written to Target.
	Source  string
	Require Precondition
	Remove  []string
	Edit    EditFunc
}

func (s Step) WithRemove(paths ...string) Step {
	s.Remove = append([]string(nil), paths...)
	return s
}

func (s Step) Must() Step {
	s.Require = MustExist
	return s
}

func (s Step) In(phase Phase) Step {
	s.Phase = phase
	return s
}

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

// Filter returns the steps of the given phase, in order.
func Filter(steps []Step, phase Phase) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Phase == phase {
			out = append(out, s)
		}
	}
	return out
}
