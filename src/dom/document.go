package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/onevent-go/onevent/src/pkg/events"
)

// ContentLoaded is fired on the document by Load.
const ContentLoaded events.EventType = "DOMContentLoaded"

var ErrNotFound = errors.New("element not found")

// Document owns an element tree and hands out one *Element per node, so
// element identity is stable across lookups.
type Document struct {
	// ErrorHandler receives errors returned by listeners of any element in the
	// document while an event is dispatched. Defaults to logging them.
	ErrorHandler events.ErrorReporter

	root      *html.Node
	mu        sync.Mutex
	elements  map[*html.Node]*Element
	listeners *events.ListenerStore
	loadOnce  sync.Once
	loaded    bool
}

func newDocument(root *html.Node) *Document {
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		listeners: events.NewListenerStore(),
	}
}

// NewDocument returns an empty document with html, head and body elements.
func NewDocument() *Document {
	doc, _ := ParseString("")
	return doc
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return newDocument(root), nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) wrap(n *html.Node) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{node: n, doc: d, listeners: events.NewListenerStore()}
	d.elements[n] = el
	return el
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func (d *Document) DocumentElement() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

func (d *Document) Body() *Element {
	el, err := d.QuerySelector("body")
	if err != nil {
		return nil
	}
	return el
}

// All returns every element in the tree in document order.
func (d *Document) All() []*Element {
	var ret []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		ret = append(ret, el)
		for _, c := range el.Children() {
			walk(c)
		}
	}
	if root := d.DocumentElement(); root != nil {
		walk(root)
	}
	return ret
}

func (d *Document) GetElementByID(id string) *Element {
	for _, el := range d.All() {
		if el.ID() == id {
			return el
		}
	}
	return nil
}

// QuerySelectorAll matches a CSS selector group against the tree.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := sel.MatchAll(d.root)
	ret := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, d.wrap(n))
	}
	return ret, nil
}

func (d *Document) QuerySelector(selector string) (*Element, error) {
	els, err := d.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, fmt.Errorf("%q: %w", selector, ErrNotFound)
	}
	return els[0], nil
}

func (d *Document) AddEventListener(eventType events.EventType, listener *events.EventListener) {
	d.listeners.AddEventListener(eventType, listener)
}

func (d *Document) RemoveEventListener(eventType events.EventType, listener *events.EventListener) {
	d.listeners.RemoveEventListener(eventType, listener)
}

func (d *Document) DispatchEvent(event *events.Event) bool {
	if event.Target == nil {
		event.Target = d
	}
	return d.listeners.Dispatch(event, d.reportError)
}

// Load signals that the content has finished loading by firing
// DOMContentLoaded on the document. Only the first call fires.
func (d *Document) Load() {
	d.loadOnce.Do(func() {
		d.loaded = true
		d.DispatchEvent(events.NewEvent(ContentLoaded, nil))
	})
}

func (d *Document) Loaded() bool {
	return d.loaded
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) reportError(event *events.Event, err error) {
	if d.ErrorHandler != nil {
		d.ErrorHandler(event, err)
		return
	}
	logrus.WithError(err).WithField("event", event.Type).Error("uncaught error in event listener")
}
