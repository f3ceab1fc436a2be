package binder

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/onevent-go/onevent/src/pkg/events"
)

// Binding describes one handler of a Control as it resolves right now.
type Binding struct {
	Event  string `json:"event"`
	Type   string `json:"type"`
	Source string `json:"source"`
}

// Control is the per-target state created by Bind: the handler table, the
// name map and the activate/deactivate surface.
type Control struct {
	ID string

	binder *Binder
	target Target

	mu       sync.RWMutex
	order    []string
	handlers map[string]*events.EventListener
	sources  map[string]string
	nameMap  map[string]string
}

func newControl(b *Binder, target Target) *Control {
	return &Control{
		ID:       uuid.Must(uuid.NewV4()).String(),
		binder:   b,
		target:   target,
		handlers: make(map[string]*events.EventListener),
		sources:  make(map[string]string),
		nameMap:  make(map[string]string),
	}
}

func (c *Control) addHandler(logical, source string) {
	if _, ok := c.handlers[logical]; !ok {
		c.order = append(c.order, logical)
	}
	c.sources[logical] = source
	c.handlers[logical] = events.NewEventListener(func(event *events.Event) (any, error) {
		ret, err := c.binder.run(c, source, event)
		c.binder.observer.Fired(logical, string(event.Type), err)
		return ret, err
	})
}

func (c *Control) Target() Target {
	return c.target
}

// Resolve returns the event type subscribed for a logical name: its mapped
// name if there is one, the name itself otherwise.
func (c *Control) Resolve(logical string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(logical)
}

func (c *Control) resolve(logical string) string {
	if physical, ok := c.nameMap[logical]; ok {
		return physical
	}
	return logical
}

// Map redirects a logical name to another event type. Listeners already
// attached keep their type; only later (de)activations use the new one.
func (c *Control) Map(logical, physical string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nameMap[logical] = physical
}

func (c *Control) Unmap(logical string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.nameMap, logical)
}

// Activate subscribes the handlers of the given logical names, or of all
// handlers when none is given. Names without a handler are ignored.
// Activating twice is harmless: the same listener is never added twice to a type.
func (c *Control) Activate(names ...string) {
	for _, b := range c.selected(names) {
		c.target.AddEventListener(events.EventType(b.physical), b.listener)
		c.binder.observer.Activated(b.logical, b.physical)
	}
}

// Deactivate is the mirror of Activate.
func (c *Control) Deactivate(names ...string) {
	for _, b := range c.selected(names) {
		c.target.RemoveEventListener(events.EventType(b.physical), b.listener)
		c.binder.observer.Deactivated(b.logical, b.physical)
	}
}

type selection struct {
	logical  string
	physical string
	listener *events.EventListener
}

func (c *Control) selected(names []string) []selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(names) == 0 {
		names = c.order
	}
	ret := make([]selection, 0, len(names))
	for _, name := range names {
		l, ok := c.handlers[name]
		if !ok {
			continue
		}
		ret = append(ret, selection{logical: name, physical: c.resolve(name), listener: l})
	}
	return ret
}

func (c *Control) Has(logical string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.handlers[logical]
	return ok
}

// Bindings lists the handlers in attribute order.
func (c *Control) Bindings() []Binding {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]Binding, 0, len(c.order))
	for _, name := range c.order {
		ret = append(ret, Binding{Event: name, Type: c.resolve(name), Source: c.sources[name]})
	}
	return ret
}

// NameMap returns a copy of the name map.
func (c *Control) NameMap() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make(map[string]string, len(c.nameMap))
	for k, v := range c.nameMap {
		ret[k] = v
	}
	return ret
}
