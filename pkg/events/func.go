package events

func NewHandlerFunc(handle func(event Event)) HandlerFunc {
	return HandlerFunc{
		handle: handle,
	}
}

type HandlerFunc struct {
	handle func(event Event)
}

func (h HandlerFunc) Handle(event Event) {
	h.handle(event)
}

// Noop discards every event.
var Noop Handler = HandlerFunc{handle: func(Event) {}}

// Tee forwards each event to every handler in order.
func Tee(handlers ...Handler) Handler {
	return NewHandlerFunc(func(event Event) {
		for _, h := range handlers {
			if h != nil {
				h.Handle(event)
			}
		}
	})
}
