package input

import "strings"

// Key is a normalized key name, lower-case
// Browser KeyboardEvent.key values and terminal key names both normalize here
type Key string

// Canonical key names
const (
	KeyArrowUp    Key = "arrowup"
	KeyArrowDown  Key = "arrowdown"
	KeyArrowLeft  Key = "arrowleft"
	KeyArrowRight Key = "arrowright"
	KeyEscape     Key = "escape"
)

// keyAliases folds alternate spellings onto canonical names
var keyAliases = map[string]Key{
	"up":    KeyArrowUp,
	"down":  KeyArrowDown,
	"left":  KeyArrowLeft,
	"right": KeyArrowRight,
	"esc":   KeyEscape,
}

// ParseKey normalizes a key name; unknown names pass through lower-cased
func ParseKey(name string) Key {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[n]; ok {
		return k
	}
	return Key(n)
}

// KeyTable maps keys to actions
type KeyTable struct {
	bindings map[Key]Action
}

// DefaultKeyTable returns the default key bindings: arrows, WASD, Escape
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		bindings: map[Key]Action{
			KeyArrowUp:    ActionUp,
			KeyArrowDown:  ActionDown,
			KeyArrowLeft:  ActionLeft,
			KeyArrowRight: ActionRight,
			"w":           ActionUp,
			"s":           ActionDown,
			"a":           ActionLeft,
			"d":           ActionRight,
			KeyEscape:     ActionExit,
		},
	}
}

// Lookup returns the action bound to k
func (t *KeyTable) Lookup(k Key) Action {
	return t.bindings[k]
}

// Bind sets or replaces a binding, ActionNone removes it
func (t *KeyTable) Bind(k Key, a Action) {
	if a == ActionNone {
		delete(t.bindings, k)
		return
	}
	t.bindings[k] = a
}

// Len returns the number of bound keys
func (t *KeyTable) Len() int {
	return len(t.bindings)
}
