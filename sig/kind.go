package sig

import "fmt"

// Kind identifies a node's behavior. The set is closed: every kind is
// matched exhaustively in evaluate.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindConstant
	KindMath
	KindLogic
	KindTimer
	KindCounter
	KindBeep
	KindScreen
	KindColor
	KindRandom
	KindPointer
	KindButton
	KindKey
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindConstant: "constant",
	KindMath:     "math",
	KindLogic:    "logic",
	KindTimer:    "timer",
	KindCounter:  "counter",
	KindBeep:     "beep",
	KindScreen:   "screen",
	KindColor:    "color",
	KindRandom:   "random",
	KindPointer:  "pointer",
	KindButton:   "button",
	KindKey:      "key",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func ParseKind(str string) (Kind, error) {
	for kind, name := range kindNames {
		if name == str && Kind(kind) != KindInvalid {
			return Kind(kind), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", str)
}

type MathOp uint8

const (
	MathAdd MathOp = iota
	MathSub
	MathMul
	MathDiv
	MathAbs
	MathSelect
)

var mathOpNames = [...]string{
	MathAdd:    "add",
	MathSub:    "sub",
	MathMul:    "mul",
	MathDiv:    "div",
	MathAbs:    "abs",
	MathSelect: "select",
}

func (o MathOp) String() string {
	if int(o) < len(mathOpNames) {
		return mathOpNames[o]
	}
	return fmt.Sprintf("MathOp(%d)", uint8(o))
}

func ParseMathOp(str string) (MathOp, error) {
	for op, name := range mathOpNames {
		if name == str {
			return MathOp(op), nil
		}
	}
	return 0, fmt.Errorf("unknown math op %q", str)
}

type LogicOp uint8

const (
	LogicAnd LogicOp = iota
	LogicOr
	LogicXor
	LogicNot
	LogicGt
	LogicLt
)

var logicOpNames = [...]string{
	LogicAnd: "and",
	LogicOr:  "or",
	LogicXor: "xor",
	LogicNot: "not",
	LogicGt:  "gt",
	LogicLt:  "lt",
}

func (o LogicOp) String() string {
	if int(o) < len(logicOpNames) {
		return logicOpNames[o]
	}
	return fmt.Sprintf("LogicOp(%d)", uint8(o))
}

func ParseLogicOp(str string) (LogicOp, error) {
	for op, name := range logicOpNames {
		if name == str {
			return LogicOp(op), nil
		}
	}
	return 0, fmt.Errorf("unknown logic op %q", str)
}
