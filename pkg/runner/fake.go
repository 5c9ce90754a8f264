package runner

import "context"

// Fake records commands instead of running them. Respond, when set, decides
// the result of each call; otherwise every command succeeds silently.
type Fake struct {
	Calls   []Call
	Respond func(workdir string, cmd Command) (Result, error)
}

type Call struct {
	Workdir string
	Command Command
}

func (f *Fake) Run(_ context.Context, workdir string, cmd Command) (Result, error) {
	f.Calls = append(f.Calls, Call{Workdir: workdir, Command: cmd})
	if f.Respond == nil {
		return Result{}, nil
	}
	return f.Respond(workdir, cmd)
}

// Lines returns every recorded command rendered as a shell line.
func (f *Fake) Lines() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Command.String()
	}
	return out
}
