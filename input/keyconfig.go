package input

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAction is returned for binding values that name no action
var ErrUnknownAction = errors.New("unknown action")

// LoadBindings overlays key → action-name overrides onto the default table
// An action name of "none" unbinds the key
// Returns error on unknown action names; keys are processed in sorted order for stable errors
func LoadBindings(overrides map[string]string) (*KeyTable, error) {
	t := DefaultKeyTable()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := overrides[k]
		if name == "none" {
			t.Bind(ParseKey(k), ActionNone)
			continue
		}
		a, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("binding %q: %w: %q", k, ErrUnknownAction, name)
		}
		t.Bind(ParseKey(k), a)
	}
	return t, nil
}
