package flow

import (
	"fmt"
	"sort"
	"strings"
)

type registryKey struct {
	Name string
	Kind AggregateKind
}

// Registry maps (event name, aggregate kind) pairs to their reducer. It is
// populated once at startup and read-only afterwards, so the materializer may
// resolve from it concurrently without locking.
type Registry struct {
	reducers map[registryKey]ReduceFunc
}

func NewRegistry() *Registry {
	return &Registry{reducers: make(map[registryKey]ReduceFunc)}
}

// Register associates a reducer with an event name and aggregate kind.
// Duplicate registration is a configuration defect and fails immediately.
func (r *Registry) Register(name string, kind AggregateKind, fn ReduceFunc) error {
	const op = "flow.Registry.Register"
	name = strings.TrimSpace(name)
	if name == "" || kind == "" {
		return NewError(CodeConfig, op, "event name and aggregate kind are required", nil)
	}
	if fn == nil {
		return NewError(CodeConfig, op, fmt.Sprintf("nil reducer for %s/%s", name, kind), nil)
	}
	key := registryKey{Name: name, Kind: kind}
	if _, exists := r.reducers[key]; exists {
		return NewError(CodeConfig, op, fmt.Sprintf("duplicate reducer for %s/%s", name, kind), nil)
	}
	r.reducers[key] = fn
	return nil
}

// MustRegister is Register for startup wiring where a failure is fatal.
func (r *Registry) MustRegister(name string, kind AggregateKind, fn ReduceFunc) {
	if err := r.Register(name, kind, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the reducer for (name, kind) or a config error. A miss here
// means an event was emitted with no reducer wired, which would silently
// desynchronize denormalized counters if skipped.
func (r *Registry) Resolve(name string, kind AggregateKind) (ReduceFunc, error) {
	const op = "flow.Registry.Resolve"
	fn, ok := r.reducers[registryKey{Name: strings.TrimSpace(name), Kind: kind}]
	if !ok {
		return nil, NewError(CodeConfig, op, fmt.Sprintf("no reducer registered for %s/%s", name, kind), nil)
	}
	return fn, nil
}

// EnsureRegistered asserts at startup that every listed event name has a
// reducer for the given kind.
func (r *Registry) EnsureRegistered(kind AggregateKind, names ...string) error {
	const op = "flow.Registry.EnsureRegistered"
	var missing []string
	for _, name := range names {
		if _, ok := r.reducers[registryKey{Name: strings.TrimSpace(name), Kind: kind}]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return NewError(CodeConfig, op, fmt.Sprintf("missing reducers for %s: %s", kind, strings.Join(missing, ", ")), nil)
	}
	return nil
}
