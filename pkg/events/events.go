package events

type Level uint8

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single report from the engine. Step is empty for events that
// are not attributed to a mutation step.
type Event struct {
	Level   Level
	Step    string
	Message string
	Error   error
}

type Handler interface {
	Handle(event Event)
}
