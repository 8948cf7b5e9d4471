package sigplay

import "github.com/reusee/siglab/sig"

// InputSource polls host input once per tick.
type InputSource func() sig.InputState

func (Module) InputSource() InputSource {
	return func() (ret sig.InputState) {
		return
	}
}
