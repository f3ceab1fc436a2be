package binder

import (
	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
)

// Selection is a set of targets with the onEvent convenience method, the way
// a selector library would expose it.
type Selection struct {
	binder  *Binder
	targets []Target
}

func (b *Binder) Selection(targets ...Target) *Selection {
	return &Selection{binder: b, targets: targets}
}

// Select matches a CSS selector against doc.
func (b *Binder) Select(doc *dom.Document, selector string) (*Selection, error) {
	els, err := doc.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	targets := make([]Target, 0, len(els))
	for _, el := range els {
		targets = append(targets, el)
	}
	return b.Selection(targets...), nil
}

func (s *Selection) Len() int {
	return len(s.targets)
}

func (s *Selection) Targets() []Target {
	return s.targets
}

// OnEvent binds each target that is not bound yet, then runs action
// ("activate" or "deactivate") restricted to names. An unknown action is
// logged and otherwise ignored.
func (s *Selection) OnEvent(action string, names ...string) *Selection {
	for _, t := range s.targets {
		c, ok := s.binder.Lookup(t)
		if !ok {
			c = s.binder.Bind(t)
		}
		switch action {
		case consts.ActionEnable:
			c.Activate(names...)
		case consts.ActionDisable:
			c.Deactivate(names...)
		default:
			s.binder.logger.Errorf("Unknown action: %s", action)
		}
	}
	return s
}
