package input

import (
	"fmt"
	"sort"
	"strings"
)

// Named keys accepted in bindings besides single letters and digits
var namedKeys = map[string]struct{}{
	"up":     {},
	"down":   {},
	"left":   {},
	"right":  {},
	"space":  {},
	"enter":  {},
	"tab":    {},
	"esc":    {},
	"ctrl+c": {},
}

// ValidKeyName reports whether name is a key the frontends can produce
func ValidKeyName(name string) bool {
	if len(name) == 1 {
		c := name[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	_, ok := namedKeys[name]
	return ok
}

// KeyTable maps frontend-neutral key names to actions
type KeyTable struct {
	bindings map[string]Action
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		bindings: map[string]Action{
			"w":      ActionP1Up,
			"s":      ActionP1Down,
			"d":      ActionP1Shoot,
			"up":     ActionP2Up,
			"down":   ActionP2Down,
			"left":   ActionP2Shoot,
			"p":      ActionPause,
			"r":      ActionRestart,
			"esc":    ActionQuit,
			"ctrl+c": ActionQuit,
		},
	}
}

// Clone returns an independent copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{bindings: make(map[string]Action, len(kt.bindings))}
	for k, v := range kt.bindings {
		c.bindings[k] = v
	}
	return c
}

// Lookup returns the action bound to a key name
func (kt *KeyTable) Lookup(name string) (Action, bool) {
	a, ok := kt.bindings[name]
	return a, ok
}

// Keys returns the sorted key names bound to action
func (kt *KeyTable) Keys(action Action) []string {
	var keys []string
	for k, a := range kt.bindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Names returns every bound key name, sorted
func (kt *KeyTable) Names() []string {
	names := make([]string, 0, len(kt.bindings))
	for k := range kt.bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Bind replaces all keys of action with keys
// A key already bound to another action moves to this one
func (kt *KeyTable) Bind(action Action, keys ...string) {
	for k, a := range kt.bindings {
		if a == action {
			delete(kt.bindings, k)
		}
	}
	for _, k := range keys {
		kt.bindings[k] = action
	}
}

// Apply overrides bindings from config (action name -> key names)
// Returns error on unknown action or key names; the table is unchanged on error
func (kt *KeyTable) Apply(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}

	// Deterministic order so a key listed under two actions always ends on the same one
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	next := kt.Clone()
	for _, name := range names {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return fmt.Errorf("keys: unknown action %q", name)
		}

		keys := make([]string, 0, len(overrides[name]))
		for _, k := range overrides[name] {
			k = strings.ToLower(strings.TrimSpace(k))
			if !ValidKeyName(k) {
				return fmt.Errorf("keys: action %q: unknown key name %q", name, k)
			}
			keys = append(keys, k)
		}
		next.Bind(action, keys...)
	}

	kt.bindings = next.bindings
	return nil
}
