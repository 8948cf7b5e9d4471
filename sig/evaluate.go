package sig

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Beep clamp ranges. Pitch is a MIDI-style note number.
const (
	PitchMin  Signal = 0
	PitchMax  Signal = 127
	VolumeMin Signal = 0
	VolumeMax Signal = 1
)

func (n *Node) evaluate(dt Signal, input InputState, random *rand.Rand) {
	switch n.Kind {

	case KindConstant:
		n.Outputs[0].Value = n.Value

	case KindMath:
		a := n.Inputs[0].Value()
		b := n.Inputs[1].Value()
		var out Signal
		switch n.MathOp {
		case MathAdd:
			out = a + b
		case MathSub:
			out = a - b
		case MathMul:
			out = a * b
		case MathDiv:
			// near-zero divisor resolves to the neutral 0
			if math32.Abs(b) > Epsilon {
				out = a / b
			}
		case MathAbs:
			out = math32.Abs(a)
		case MathSelect:
			if on(a) {
				out = b
			} else {
				out = n.Inputs[2].Value()
			}
		}
		n.Outputs[0].Value = out

	case KindLogic:
		a := n.Inputs[0].Value()
		b := n.Inputs[1].Value()
		var out bool
		switch n.LogicOp {
		case LogicAnd:
			out = on(a) && on(b)
		case LogicOr:
			out = on(a) || on(b)
		case LogicXor:
			out = on(a) != on(b)
		case LogicNot:
			out = !on(a)
		case LogicGt:
			out = a > b
		case LogicLt:
			out = a < b
		}
		n.Outputs[0].Value = boolSignal(out)

	case KindTimer:
		if n.Inputs[0].on() {
			n.elapsed = 0
		} else {
			n.elapsed += dt
		}
		n.Outputs[0].Value = n.elapsed

	case KindCounter:
		up := n.Inputs[0].on()
		down := n.Inputs[1].on()
		if n.Inputs[2].on() {
			// reset suppresses counting this tick
			n.count = 0
		} else {
			if up && !n.prevUp {
				n.count++
			}
			if down && !n.prevDown {
				n.count--
			}
		}
		n.prevUp = up
		n.prevDown = down
		n.Outputs[0].Value = n.count

	case KindBeep:
		trigger := n.Inputs[0].on()
		n.ShouldPlay = trigger && !n.prevTrigger
		n.prevTrigger = trigger
		if n.ShouldPlay {
			n.Pitch = clamp(n.Inputs[1].Value(), PitchMin, PitchMax)
			n.Volume = clamp(n.Inputs[2].Value(), VolumeMin, VolumeMax)
		}

	case KindScreen:
		if n.Inputs[0].on() {
			x := int(n.Inputs[1].Value())
			y := int(n.Inputs[2].Value())
			x = min(max(x, 0), n.Width-1)
			y = min(max(y, 0), n.Height-1)
			n.Pixels[y*n.Width+x] = uint32(n.Inputs[3].Value())
		}

	case KindColor:
		r := uint32(clamp(n.Inputs[0].Value(), 0, 1) * 255)
		g := uint32(clamp(n.Inputs[1].Value(), 0, 1) * 255)
		b := uint32(clamp(n.Inputs[2].Value(), 0, 1) * 255)
		n.Outputs[0].Value = Signal(r<<16 | g<<8 | b)

	case KindRandom:
		n.Outputs[0].Value = random.Float32()

	case KindPointer:
		n.Outputs[0].Value = input.PointerX
		n.Outputs[1].Value = input.PointerY

	case KindButton:
		n.Outputs[0].Value = boolSignal(input.Button(n.Index))

	case KindKey:
		n.Outputs[0].Value = boolSignal(input.Key(n.Index))

	}
}
