package script

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry resolves attribute text to a registered Func by name, so
// `on-click="save"` (or `on-click="save()"`) calls the Func registered as "save".
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Names lists the registered handler names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func (r *Registry) Compile(source string) (Program, error) {
	name := strings.TrimSuffix(strings.TrimSpace(source), "()")
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHandler)
	}
	return fn, nil
}
