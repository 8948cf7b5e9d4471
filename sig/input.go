package sig

// InputState is the host input snapshot consumed by sensor nodes each
// tick.
type InputState struct {
	PointerX Signal
	PointerY Signal
	Buttons  [3]bool
	Keys     [256]bool
}

func (s InputState) Button(index int) bool {
	if index < 0 || index >= len(s.Buttons) {
		return false
	}
	return s.Buttons[index]
}

func (s InputState) Key(code int) bool {
	if code < 0 || code >= len(s.Keys) {
		return false
	}
	return s.Keys[code]
}
