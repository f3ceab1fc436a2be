package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/onevent-go/onevent/src/pkg/events"
)

// Attribute is one name/value pair of an element, in document order.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element wraps an element node of a Document. Attributes live on the
// underlying html.Node so the tree can be rendered back at any time.
type Element struct {
	node      *html.Node
	doc       *Document
	listeners *events.ListenerStore
}

func (el *Element) Node() *html.Node {
	return el.node
}

func (el *Element) Document() *Document {
	return el.doc
}

// TagName is the upper-cased tag, as browsers report it.
func (el *Element) TagName() string {
	return strings.ToUpper(el.node.Data)
}

func (el *Element) ID() string {
	id, _ := el.GetAttribute("id")
	return id
}

// Attributes returns the attribute list in source order. When a name repeats,
// only its first occurrence counts.
func (el *Element) Attributes() []Attribute {
	ret := make([]Attribute, 0, len(el.node.Attr))
	seen := make(map[string]struct{}, len(el.node.Attr))
	for _, a := range el.node.Attr {
		name := attrName(a)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		ret = append(ret, Attribute{Name: name, Value: a.Val})
	}
	return ret
}

func (el *Element) GetAttribute(name string) (string, bool) {
	for _, a := range el.node.Attr {
		if attrName(a) == name {
			return a.Val, true
		}
	}
	return "", false
}

func (el *Element) HasAttribute(name string) bool {
	_, ok := el.GetAttribute(name)
	return ok
}

func (el *Element) SetAttribute(name, value string) {
	for i, a := range el.node.Attr {
		if attrName(a) == name {
			el.node.Attr[i].Val = value
			return
		}
	}
	el.node.Attr = append(el.node.Attr, html.Attribute{Key: name, Val: value})
}

func (el *Element) RemoveAttribute(name string) {
	attrs := el.node.Attr[:0]
	for _, a := range el.node.Attr {
		if attrName(a) != name {
			attrs = append(attrs, a)
		}
	}
	el.node.Attr = attrs
}

func (el *Element) ClassList() *ClassList {
	return &ClassList{el: el}
}

func (el *Element) Parent() *Element {
	p := el.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return el.doc.wrap(p)
}

func (el *Element) Children() []*Element {
	var ret []*Element
	for c := el.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			ret = append(ret, el.doc.wrap(c))
		}
	}
	return ret
}

// AppendChild moves child under el, detaching it from its current parent first.
func (el *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	el.node.AppendChild(child.node)
}

// Remove detaches el from the tree. Its listeners stay registered.
func (el *Element) Remove() {
	if el.node.Parent != nil {
		el.node.Parent.RemoveChild(el.node)
	}
}

func (el *Element) AddEventListener(eventType events.EventType, listener *events.EventListener) {
	el.listeners.AddEventListener(eventType, listener)
}

func (el *Element) RemoveEventListener(eventType events.EventType, listener *events.EventListener) {
	el.listeners.RemoveEventListener(eventType, listener)
}

// ListenerTypes returns the event types el currently listens to.
func (el *Element) ListenerTypes() []events.EventType {
	return el.listeners.Types()
}

// DispatchEvent runs the listeners of el for event.Type synchronously.
// Listener errors go to the document's ErrorHandler.
func (el *Element) DispatchEvent(event *events.Event) bool {
	if event.Target == nil {
		event.Target = el
	}
	return el.listeners.Dispatch(event, el.doc.reportError)
}

// OuterHTML renders el and its subtree.
func (el *Element) OuterHTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, el.node); err != nil {
		return ""
	}
	return sb.String()
}

func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}
