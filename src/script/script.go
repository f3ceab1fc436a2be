// Package script compiles the text of handler attributes into programs that
// run with the firing event in scope.
//
// The otto engine evaluates attribute text as JavaScript with no sandbox:
// markup is trusted exactly like an inline script. The registry engine only
// resolves attribute text to Go functions registered by the host.
package script

import (
	"errors"

	"github.com/onevent-go/onevent/src/pkg/events"
)

const (
	EngineOtto     = "otto"
	EngineRegistry = "registry"
)

var ErrUnknownHandler = errors.New("unknown handler")

// Program is a compiled handler. Run is called once per firing with the
// element the handler is bound to and the live event.
type Program interface {
	Run(this events.Target, event *events.Event) (any, error)
}

type Evaluator interface {
	Compile(source string) (Program, error)
}

// Func is a Go handler that can stand in for attribute text.
type Func func(this events.Target, event *events.Event) (any, error)

func (f Func) Run(this events.Target, event *events.Event) (any, error) {
	return f(this, event)
}
