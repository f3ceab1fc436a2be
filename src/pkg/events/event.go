package events

type EventType string

// EventHandler runs for one firing of an event. The returned value is what the
// handler evaluated to; a literal false on a cancelable event prevents the default.
type EventHandler func(event *Event) (any, error)

type Event struct {
	Type       EventType
	Detail     any
	Target     Target
	Cancelable bool

	defaultPrevented bool
}

func NewEvent(eventType EventType, detail any) *Event {
	return &Event{Type: eventType, Detail: detail}
}

func NewCancelableEvent(eventType EventType, detail any) *Event {
	return &Event{Type: eventType, Detail: detail, Cancelable: true}
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// EventListener is compared by pointer: removing a listener needs the same
// *EventListener that was added.
type EventListener struct {
	Handler EventHandler
}

func NewEventListener(handler EventHandler) *EventListener {
	return &EventListener{handler}
}

// Target is anything listeners can be subscribed to.
type Target interface {
	AddEventListener(eventType EventType, listener *EventListener)
	RemoveEventListener(eventType EventType, listener *EventListener)
}
