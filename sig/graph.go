package sig

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Graph is an ordered collection of nodes plus the wiring held inside
// each input port. Insertion order is the evaluation order.
type Graph struct {
	nodes  []*Node
	nextID int
	random *rand.Rand
}

// NewGraph creates an empty graph. The random source feeds Random nodes;
// nil uses a fixed-seed default.
func NewGraph(random *rand.Rand) *Graph {
	if random == nil {
		random = rand.New(rand.NewPCG(0, 0))
	}
	return &Graph{
		random: random,
	}
}

func (g *Graph) Nodes() []*Node {
	return g.nodes
}

func (g *Graph) NodeByID(id int) *Node {
	for _, n := range g.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (g *Graph) add(kind Kind, name string) *Node {
	n := &Node{
		ID:   g.nextID,
		Name: name,
		Kind: kind,
	}
	g.nextID++
	g.nodes = append(g.nodes, n)
	return n
}

func (g *Graph) Constant(value Signal) *Node {
	n := g.add(KindConstant, "constant")
	n.Value = value
	n.addOutput("out")
	return n
}

func (g *Graph) Math(op MathOp) *Node {
	n := g.add(KindMath, op.String())
	n.MathOp = op
	n.addInput("a")
	n.addInput("b")
	n.addInput("c")
	n.addOutput("result")
	return n
}

func (g *Graph) Logic(op LogicOp) *Node {
	n := g.add(KindLogic, op.String())
	n.LogicOp = op
	n.addInput("a")
	n.addInput("b")
	n.addOutput("result")
	return n
}

func (g *Graph) Timer() *Node {
	n := g.add(KindTimer, "timer")
	n.addInput("reset")
	n.addOutput("time")
	return n
}

func (g *Graph) Counter() *Node {
	n := g.add(KindCounter, "counter")
	n.addInput("up")
	n.addInput("down")
	n.addInput("reset")
	n.addOutput("value")
	return n
}

func (g *Graph) Beep() *Node {
	n := g.add(KindBeep, "beep")
	n.addInput("trigger")
	n.addInput("pitch")
	n.addInput("volume")
	return n
}

func (g *Graph) Screen(width, height int) *Node {
	n := g.add(KindScreen, "screen")
	n.Width = width
	n.Height = height
	n.Pixels = make([]uint32, width*height)
	n.addInput("plot")
	n.addInput("x")
	n.addInput("y")
	n.addInput("color")
	return n
}

func (g *Graph) Color() *Node {
	n := g.add(KindColor, "color")
	n.addInput("r")
	n.addInput("g")
	n.addInput("b")
	n.addOutput("color")
	return n
}

func (g *Graph) Random() *Node {
	n := g.add(KindRandom, "random")
	n.addOutput("out")
	return n
}

func (g *Graph) Pointer() *Node {
	n := g.add(KindPointer, "pointer")
	n.addOutput("x")
	n.addOutput("y")
	return n
}

func (g *Graph) Button(index int) *Node {
	n := g.add(KindButton, "button")
	n.Index = index
	n.addOutput("out")
	return n
}

func (g *Graph) Key(code int) *Node {
	n := g.add(KindKey, "key")
	n.Index = code
	n.addOutput("out")
	return n
}

// Connect appends src's output at srcSlot to dst's input at dstSlot.
// Connecting the same pair of ports twice is a no-op. Out-of-range slots
// are contract errors.
func (g *Graph) Connect(src *Node, srcSlot int, dst *Node, dstSlot int) error {
	if src == nil || dst == nil {
		return fmt.Errorf("connect: nil node")
	}
	if srcSlot < 0 || srcSlot >= len(src.Outputs) {
		return fmt.Errorf("connect: no output slot %d on node %d (%s)", srcSlot, src.ID, src.Name)
	}
	if dstSlot < 0 || dstSlot >= len(dst.Inputs) {
		return fmt.Errorf("connect: no input slot %d on node %d (%s)", dstSlot, dst.ID, dst.Name)
	}
	dst.Inputs[dstSlot].connect(src.Outputs[srcSlot])
	return nil
}

// ConnectID is the by-ID variant of Connect, used when loading.
func (g *Graph) ConnectID(srcID, srcSlot, dstID, dstSlot int) error {
	src := g.NodeByID(srcID)
	if src == nil {
		return fmt.Errorf("connect: no node %d", srcID)
	}
	dst := g.NodeByID(dstID)
	if dst == nil {
		return fmt.Errorf("connect: no node %d", dstID)
	}
	return g.Connect(src, srcSlot, dst, dstSlot)
}

// Remove unlinks the node and scrubs every input port in the graph that
// references one of its outputs.
func (g *Graph) Remove(node *Node) {
	idx := slices.Index(g.nodes, node)
	if idx < 0 {
		return
	}
	g.nodes = slices.Delete(g.nodes, idx, idx+1)
	for _, n := range g.nodes {
		for _, in := range n.Inputs {
			in.scrub(node.ID)
		}
	}
}

// Tick evaluates every node exactly once, in one linear pass in list
// order. There is no dependency sort: a node wired from a node later in
// the list observes that node's previous tick value.
func (g *Graph) Tick(dt Signal, input InputState) {
	for _, n := range g.nodes {
		n.evaluate(dt, input, g.random)
	}
}
