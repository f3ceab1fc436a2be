package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/onevent-go/onevent/src/binder"
	"github.com/onevent-go/onevent/src/dom"
)

// Entry is one bound element as seen by report templates.
type Entry struct {
	Tag       string
	ID        string
	Control   string
	Bindings  []binder.Binding
	NameMap   map[string]string
	Listening []string
}

// Collect lists the bound elements of doc that declare at least one handler
// or mapping, in document order.
func Collect(doc *dom.Document, b *binder.Binder) []Entry {
	var ret []Entry
	for _, el := range doc.All() {
		c, ok := b.Lookup(el)
		if !ok {
			continue
		}
		bindings, nameMap := c.Bindings(), c.NameMap()
		if len(bindings) == 0 && len(nameMap) == 0 {
			continue
		}
		entry := Entry{
			Tag:      el.TagName(),
			ID:       el.ID(),
			Control:  c.ID,
			Bindings: bindings,
			NameMap:  nameMap,
		}
		for _, t := range el.ListenerTypes() {
			entry.Listening = append(entry.Listening, string(t))
		}
		ret = append(ret, entry)
	}
	return ret
}

// Render executes tmpl over entries with the sprig function set.
func Render(w io.Writer, tmpl string, entries []Entry) error {
	t, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("invalid report template: %w", err)
	}
	return t.Execute(w, entries)
}
