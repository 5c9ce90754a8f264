package generate

type State uint8

const (
	Init State = iota
	Acquiring
	Installing
	Mutating
	Finalizing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Acquiring:
		return "acquiring"
	case Installing:
		return "installing"
	case Mutating:
		return "mutating"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
