package events

import (
	"sync"
)

// ErrorReporter receives errors returned by listeners while an event is dispatched.
type ErrorReporter func(event *Event, err error)

// ListenerStore keeps listeners per event type in registration order.
// Adding the same listener twice for one type is a no-op.
type ListenerStore struct {
	mu   sync.RWMutex
	list map[EventType][]*EventListener
}

func NewListenerStore() *ListenerStore {
	return &ListenerStore{list: make(map[EventType][]*EventListener)}
}

func (s *ListenerStore) AddEventListener(eventType EventType, listener *EventListener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.list == nil {
		s.list = make(map[EventType][]*EventListener)
	}
	for _, l := range s.list[eventType] {
		if l == listener {
			return
		}
	}
	s.list[eventType] = append(s.list[eventType], listener)
}

func (s *ListenerStore) RemoveEventListener(eventType EventType, listener *EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listeners := s.list[eventType]
	for i, l := range listeners {
		if l != listener {
			continue
		}
		listeners = append(listeners[:i:i], listeners[i+1:]...)
		if len(listeners) == 0 {
			delete(s.list, eventType)
		} else {
			s.list[eventType] = listeners
		}
		return
	}
}

// Listeners returns a snapshot of the listeners registered for eventType.
func (s *ListenerStore) Listeners(eventType EventType) []*EventListener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]*EventListener, len(s.list[eventType]))
	copy(ret, s.list[eventType])
	return ret
}

// Types returns every event type that currently has at least one listener.
func (s *ListenerStore) Types() []EventType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]EventType, 0, len(s.list))
	for t := range s.list {
		ret = append(ret, t)
	}
	return ret
}

// Dispatch calls the listeners registered for event.Type in registration order.
// A failing listener is reported and does not stop the others.
// It returns false when the default action was prevented.
func (s *ListenerStore) Dispatch(event *Event, report ErrorReporter) bool {
	for _, l := range s.Listeners(event.Type) {
		if l.Handler == nil {
			continue
		}
		ret, err := l.Handler(event)
		if err != nil {
			if report != nil {
				report(event, err)
			}
			continue
		}
		if b, ok := ret.(bool); ok && !b {
			event.PreventDefault()
		}
	}
	return !event.DefaultPrevented()
}
