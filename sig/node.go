package sig

// Node is a unit of computation. Ports are created once at construction
// and never reordered or resized. Kind-specific configuration lives in
// the exported fields below; per-tick private state in the unexported
// ones.
type Node struct {
	ID   int
	Name string
	Kind Kind
	X, Y int

	Inputs  []*InputPort
	Outputs []*OutputPort

	// kind-specific configuration
	Value         Signal // Constant
	MathOp        MathOp
	LogicOp       LogicOp
	Index         int // Button index, Key code
	Width, Height int // Screen

	// sink side channels, refreshed each tick
	ShouldPlay    bool
	Pitch, Volume Signal
	Pixels        []uint32

	// per-tick state
	elapsed     Signal
	count       Signal
	prevUp      bool
	prevDown    bool
	prevTrigger bool
}

func (n *Node) addInput(name string) {
	n.Inputs = append(n.Inputs, &InputPort{
		Name: name,
	})
}

func (n *Node) addOutput(name string) {
	n.Outputs = append(n.Outputs, &OutputPort{
		Name: name,
		Node: n.ID,
		Slot: len(n.Outputs),
	})
}

// Out reads the value of the slot-th output port.
func (n *Node) Out(slot int) Signal {
	return n.Outputs[slot].Value
}
