// Package binder wires declarative on-* attributes to event listeners.
//
//	<button on-click="this.classList.add('pressed')"></button>
//	<div on-open:map="customopen" on-open="count++"></div>
//
// An on-<event> attribute holds the handler text, evaluated by a
// script.Evaluator every time the event fires, with the event available as e.
// An on-<event>:map attribute names the event type actually subscribed to
// for the logical name <event>.
package binder

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/pkg/events"
	"github.com/onevent-go/onevent/src/script"
)

//go:generate mockgen -source=binder.go -destination=mock_binder_test.go -package=binder

// Target is what can be bound: an attribute list plus the add/remove listener primitive.
type Target interface {
	Attributes() []dom.Attribute
	events.Target
}

// Observer is told about the life of bindings. Its methods are called
// synchronously from Bind, Activate, Deactivate and handler firings.
type Observer interface {
	Bound(c *Control)
	Activated(logical, physical string)
	Deactivated(logical, physical string)
	Fired(logical, physical string, err error)
}

type nopObserver struct{}

func (nopObserver) Bound(*Control)              {}
func (nopObserver) Activated(string, string)    {}
func (nopObserver) Deactivated(string, string)  {}
func (nopObserver) Fired(string, string, error) {}

type Option func(*Binder)

func WithObserver(o Observer) Option {
	return func(b *Binder) {
		if o != nil {
			b.observer = o
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Binder binds targets and keeps a side table from target to Control, so the
// target itself is never modified beyond its listener registrations.
type Binder struct {
	evaluator script.Evaluator
	observer  Observer
	logger    logrus.FieldLogger

	mu       sync.Mutex
	controls map[Target]*Control
}

func New(evaluator script.Evaluator, opts ...Option) *Binder {
	b := &Binder{
		evaluator: evaluator,
		observer:  nopObserver{},
		logger:    logrus.StandardLogger(),
		controls:  make(map[Target]*Control),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func Version() string {
	return consts.Version
}

// Bind scans the attributes of target once, in their order, builds the
// handler table and name map, and activates every handler before returning.
// Binding a target that is already bound deactivates the previous Control
// and replaces it.
func (b *Binder) Bind(target Target) *Control {
	if old, ok := b.Lookup(target); ok {
		old.Deactivate()
	}

	c := newControl(b, target)
	for _, attr := range target.Attributes() {
		if !strings.HasPrefix(attr.Name, consts.AttrPrefix) {
			continue
		}
		name := strings.TrimPrefix(attr.Name, consts.AttrPrefix)
		if strings.HasSuffix(name, consts.MapSuffix) {
			c.nameMap[strings.TrimSuffix(name, consts.MapSuffix)] = attr.Value
			continue
		}
		c.addHandler(name, attr.Value)
	}

	b.mu.Lock()
	b.controls[target] = c
	b.mu.Unlock()

	b.logger.WithFields(logrus.Fields{
		"control":  c.ID,
		"handlers": len(c.order),
		"mapped":   len(c.nameMap),
	}).Debug("bound target")
	b.observer.Bound(c)

	c.Activate()
	return c
}

// BindAll binds every target in order.
func (b *Binder) BindAll(targets ...Target) []*Control {
	ret := make([]*Control, 0, len(targets))
	for _, t := range targets {
		ret = append(ret, b.Bind(t))
	}
	return ret
}

func (b *Binder) Lookup(target Target) (*Control, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.controls[target]
	return c, ok
}

// LookupID finds a Control by its ID.
func (b *Binder) LookupID(id string) (*Control, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.controls {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Controls returns every live Control. The order is unspecified.
func (b *Binder) Controls() []*Control {
	b.mu.Lock()
	defer b.mu.Unlock()
	ret := make([]*Control, 0, len(b.controls))
	for _, c := range b.controls {
		ret = append(ret, c)
	}
	return ret
}

// Unbind deactivates the Control of target and drops it from the side table.
func (b *Binder) Unbind(target Target) {
	c, ok := b.Lookup(target)
	if !ok {
		return
	}
	c.Deactivate()
	b.mu.Lock()
	delete(b.controls, target)
	b.mu.Unlock()
}

// AutoInit binds every element of doc once its content has loaded. Elements
// added after that are left alone. If doc has already loaded, it binds now.
func (b *Binder) AutoInit(doc *dom.Document) {
	bindAll := func() {
		for _, el := range doc.All() {
			b.Bind(el)
		}
	}
	if doc.Loaded() {
		bindAll()
		return
	}
	var listener *events.EventListener
	listener = events.NewEventListener(func(*events.Event) (any, error) {
		doc.RemoveEventListener(dom.ContentLoaded, listener)
		bindAll()
		return nil, nil
	})
	doc.AddEventListener(dom.ContentLoaded, listener)
}

func (b *Binder) run(c *Control, source string, event *events.Event) (any, error) {
	p, err := b.evaluator.Compile(source)
	if err != nil {
		return nil, err
	}
	return p.Run(c.target, event)
}
