package script

import (
	"fmt"

	"github.com/bluele/gcache"
	"github.com/robertkrimen/otto"

	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/pkg/events"
)

const DefaultCacheSize = 256

// OttoEvaluator runs attribute text as JavaScript in one shared otto VM.
// Globals set on the VM are visible to every handler.
//
// The VM is not safe for concurrent use; callers dispatch from one goroutine
// at a time.
type OttoEvaluator struct {
	vm     *otto.Otto
	cache  gcache.Cache
	evalFn otto.Value
}

func NewOttoEvaluator(cacheSize int) *OttoEvaluator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &OttoEvaluator{
		vm:    otto.New(),
		cache: gcache.New(cacheSize).LRU().Build(),
	}
}

func (o *OttoEvaluator) VM() *otto.Otto {
	return o.vm
}

func (o *OttoEvaluator) Set(name string, value any) error {
	return o.vm.Set(name, value)
}

// Get exports the global name as a Go value; undefined globals export as nil.
func (o *OttoEvaluator) Get(name string) (any, error) {
	v, err := o.vm.Get(name)
	if err != nil {
		return nil, err
	}
	return v.Export()
}

// evalWrapper runs a statement list with a direct eval, so e, this and the
// globals are in scope and the value of the last statement is the result.
const evalWrapper = "(function(%s, __src) { return eval(__src); })"

// Compile turns source into a function of the event. Source is tried as an
// expression first, then as a statement list run through eval, whose result
// is the value of its last statement, and last as a function body, where only
// return gives a result. Compiled functions are cached by source text.
func (o *OttoEvaluator) Compile(source string) (Program, error) {
	if v, err := o.cache.Get(source); err == nil {
		return v.(Program), nil
	}
	p := &ottoProgram{o: o, source: source}
	fn, err := o.vm.Run(fmt.Sprintf("(function(%s) { return (%s\n); })", consts.EventVarName, source))
	switch {
	case err == nil:
	case o.compiles(source):
		if fn, err = o.statements(); err != nil {
			return nil, err
		}
		p.eval = true
	default:
		// a function body, so a top level return is allowed
		fn, err = o.vm.Run(fmt.Sprintf("(function(%s) {\n%s\n})", consts.EventVarName, source))
		if err != nil {
			return nil, fmt.Errorf("failed to compile %q: %w", source, err)
		}
	}
	p.fn = fn
	if err := o.cache.Set(source, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (o *OttoEvaluator) compiles(source string) bool {
	_, err := o.vm.Compile("", source)
	return err == nil
}

func (o *OttoEvaluator) statements() (otto.Value, error) {
	if !o.evalFn.IsFunction() {
		fn, err := o.vm.Run(fmt.Sprintf(evalWrapper, consts.EventVarName))
		if err != nil {
			return otto.UndefinedValue(), err
		}
		o.evalFn = fn
	}
	return o.evalFn, nil
}

type ottoProgram struct {
	o      *OttoEvaluator
	fn     otto.Value
	source string
	// eval programs take the source text as a second argument.
	eval bool
}

func (p *ottoProgram) Run(this events.Target, event *events.Event) (any, error) {
	thisObj, err := p.o.targetObject(this)
	if err != nil {
		return nil, err
	}
	evtObj, err := p.o.eventObject(event, this, thisObj)
	if err != nil {
		return nil, err
	}
	args := []any{evtObj.Value()}
	if p.eval {
		args = append(args, p.source)
	}
	ret, err := p.fn.Call(thisObj.Value(), args...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", p.source, err)
	}
	if ret.IsUndefined() || ret.IsNull() {
		return nil, nil
	}
	return ret.Export()
}

func (o *OttoEvaluator) value(v any) otto.Value {
	ret, err := o.vm.ToValue(v)
	if err != nil {
		return otto.UndefinedValue()
	}
	return ret
}

type objectBuilder struct {
	obj *otto.Object
	err error
}

func (b *objectBuilder) set(name string, v any) {
	if b.err == nil {
		b.err = b.obj.Set(name, v)
	}
}

func (o *OttoEvaluator) newObject() (*objectBuilder, error) {
	obj, err := o.vm.Object("({})")
	if err != nil {
		return nil, err
	}
	return &objectBuilder{obj: obj}, nil
}

func (o *OttoEvaluator) eventObject(event *events.Event, this events.Target, thisObj *otto.Object) (*otto.Object, error) {
	b, err := o.newObject()
	if err != nil {
		return nil, err
	}
	b.set("type", string(event.Type))
	b.set("detail", event.Detail)
	b.set("cancelable", event.Cancelable)
	b.set("defaultPrevented", event.DefaultPrevented())
	b.set("preventDefault", func(call otto.FunctionCall) otto.Value {
		event.PreventDefault()
		_ = b.obj.Set("defaultPrevented", event.DefaultPrevented())
		return otto.UndefinedValue()
	})
	switch {
	case event.Target == this:
		b.set("target", thisObj.Value())
	case event.Target != nil:
		target, err := o.targetObject(event.Target)
		if err != nil {
			return nil, err
		}
		b.set("target", target.Value())
	default:
		b.set("target", otto.NullValue())
	}
	return b.obj, b.err
}

// targetObject exposes a target to scripts. Elements get a small DOM-like
// surface; any other target is an empty object.
func (o *OttoEvaluator) targetObject(target events.Target) (*otto.Object, error) {
	b, err := o.newObject()
	if err != nil {
		return nil, err
	}
	el, ok := target.(*dom.Element)
	if !ok {
		return b.obj, nil
	}
	b.set("id", el.ID())
	b.set("tagName", el.TagName())
	b.set("getAttribute", func(call otto.FunctionCall) otto.Value {
		v, ok := el.GetAttribute(call.Argument(0).String())
		if !ok {
			return otto.NullValue()
		}
		return o.value(v)
	})
	b.set("hasAttribute", func(call otto.FunctionCall) otto.Value {
		return o.value(el.HasAttribute(call.Argument(0).String()))
	})
	b.set("setAttribute", func(call otto.FunctionCall) otto.Value {
		el.SetAttribute(call.Argument(0).String(), call.Argument(1).String())
		return otto.UndefinedValue()
	})
	b.set("removeAttribute", func(call otto.FunctionCall) otto.Value {
		el.RemoveAttribute(call.Argument(0).String())
		return otto.UndefinedValue()
	})
	b.set("dispatchEvent", func(call otto.FunctionCall) otto.Value {
		var detail any
		if arg := call.Argument(1); !arg.IsUndefined() {
			detail, _ = arg.Export()
		}
		evt := events.NewCancelableEvent(events.EventType(call.Argument(0).String()), detail)
		return o.value(el.DispatchEvent(evt))
	})

	classList, err := o.classListObject(el.ClassList())
	if err != nil {
		return nil, err
	}
	b.set("classList", classList.Value())
	return b.obj, b.err
}

func (o *OttoEvaluator) classListObject(cl *dom.ClassList) (*otto.Object, error) {
	b, err := o.newObject()
	if err != nil {
		return nil, err
	}
	tokens := func(call otto.FunctionCall) []string {
		ret := make([]string, 0, len(call.ArgumentList))
		for _, arg := range call.ArgumentList {
			ret = append(ret, arg.String())
		}
		return ret
	}
	b.set("add", func(call otto.FunctionCall) otto.Value {
		cl.Add(tokens(call)...)
		return otto.UndefinedValue()
	})
	b.set("remove", func(call otto.FunctionCall) otto.Value {
		cl.Remove(tokens(call)...)
		return otto.UndefinedValue()
	})
	b.set("contains", func(call otto.FunctionCall) otto.Value {
		return o.value(cl.Contains(call.Argument(0).String()))
	})
	b.set("toggle", func(call otto.FunctionCall) otto.Value {
		return o.value(cl.Toggle(call.Argument(0).String()))
	})
	return b.obj, b.err
}
