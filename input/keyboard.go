package input

// Keyboard tracks held directional keys
type Keyboard struct {
	table *KeyTable
	held  State
}

// NewKeyboard uses table, or the defaults when nil
func NewKeyboard(table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table}
}

// Press records a key-down and returns the bound action
func (k *Keyboard) Press(key Key) Action {
	a := k.table.Lookup(key)
	if a.directional() {
		k.held.set(a, true)
	}
	return a
}

// Release records a key-up and returns the bound action
func (k *Keyboard) Release(key Key) Action {
	a := k.table.Lookup(key)
	if a.directional() {
		k.held.set(a, false)
	}
	return a
}

// State returns the held directions
func (k *Keyboard) State() State {
	return k.held
}

// Clear drops all held keys
func (k *Keyboard) Clear() {
	k.held = State{}
}
