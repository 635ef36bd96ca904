package input

// State is the pressed/released map the systems read each tick.
// Actions that were never pressed read as released.
type State struct {
	pressed [numActions]bool
}

func (s *State) KeyDown(a Action) {
	if a < numActions {
		s.pressed[a] = true
	}
}

func (s *State) KeyUp(a Action) {
	if a < numActions {
		s.pressed[a] = false
	}
}

func (s *State) IsPressed(a Action) bool {
	return a < numActions && s.pressed[a]
}

// Consume reports whether a is pressed and releases it. Systems use it for
// edge-triggered actions so holding the key fires once.
func (s *State) Consume(a Action) bool {
	if !s.IsPressed(a) {
		return false
	}
	s.pressed[a] = false
	return true
}

// Reset releases every action.
func (s *State) Reset() {
	s.pressed = [numActions]bool{}
}

// KeyDownName presses the named action. Unknown names are ignored.
func (s *State) KeyDownName(name string) {
	if a, err := ParseAction(name); err == nil {
		s.KeyDown(a)
	}
}

// KeyUpName releases the named action. Unknown names are ignored.
func (s *State) KeyUpName(name string) {
	if a, err := ParseAction(name); err == nil {
		s.KeyUp(a)
	}
}

// IsPressedName is false for unknown names.
func (s *State) IsPressedName(name string) bool {
	a, err := ParseAction(name)
	return err == nil && s.IsPressed(a)
}
