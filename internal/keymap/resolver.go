package keymap

import "slices"

// Resolver turns key presses into actions.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings both ways. When a key appears in several
// bindings the last one wins; keys listed per action keep first-seen order.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)*2),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action bound to key, "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
