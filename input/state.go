package input

// State is the merged directional control signal read once per tick
type State struct {
	Up, Down, Left, Right bool
}

// Merge combines two producers by logical OR per direction
func Merge(a, b State) State {
	return State{
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
	}
}

// Any reports whether any direction is held
func (s State) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// set toggles the flag bound to a directional action
func (s *State) set(a Action, on bool) {
	switch a {
	case ActionUp:
		s.Up = on
	case ActionDown:
		s.Down = on
	case ActionLeft:
		s.Left = on
	case ActionRight:
		s.Right = on
	}
}
