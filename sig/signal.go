package sig

import "github.com/chewxy/math32"

// Signal is the universal currency between ports.
type Signal = float32

// Epsilon is the threshold for interpreting a signal as a boolean:
// a signal is "on" when its magnitude exceeds it.
const Epsilon Signal = 1e-4

func on(v Signal) bool {
	return math32.Abs(v) > Epsilon
}

func boolSignal(b bool) Signal {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi Signal) Signal {
	return math32.Min(math32.Max(v, lo), hi)
}
