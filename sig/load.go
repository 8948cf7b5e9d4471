package sig

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Load reconstructs a graph from its textual form. Malformed or
// unrecognized lines are skipped; they never abort the whole load.
func Load(r io.Reader, random *rand.Rand) (*Graph, error) {
	g := NewGraph(random)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if strings.HasPrefix(line, "SIGLAB") {
				continue
			}
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "NODE":
			g.loadNode(fields[1:])
		case "CONN":
			g.loadConn(fields[1:])
		}
	}
	return g, scanner.Err()
}

func (g *Graph) loadNode(fields []string) {
	if len(fields) < 4 {
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 || g.NodeByID(id) != nil {
		return
	}
	kind, err := ParseKind(fields[1])
	if err != nil {
		return
	}
	x, err := strconv.Atoi(fields[2])
	if err != nil {
		return
	}
	y, err := strconv.Atoi(fields[3])
	if err != nil {
		return
	}
	args := fields[4:]

	var n *Node
	switch kind {

	case KindConstant:
		if len(args) < 1 {
			return
		}
		value, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return
		}
		n = g.Constant(Signal(value))

	case KindMath:
		if len(args) < 1 {
			return
		}
		op, err := ParseMathOp(args[0])
		if err != nil {
			return
		}
		n = g.Math(op)

	case KindLogic:
		if len(args) < 1 {
			return
		}
		op, err := ParseLogicOp(args[0])
		if err != nil {
			return
		}
		n = g.Logic(op)

	case KindTimer:
		n = g.Timer()

	case KindCounter:
		n = g.Counter()

	case KindBeep:
		n = g.Beep()

	case KindScreen:
		if len(args) < 2 {
			return
		}
		width, err := strconv.Atoi(args[0])
		if err != nil || width <= 0 {
			return
		}
		height, err := strconv.Atoi(args[1])
		if err != nil || height <= 0 {
			return
		}
		n = g.Screen(width, height)

	case KindColor:
		n = g.Color()

	case KindRandom:
		n = g.Random()

	case KindPointer:
		n = g.Pointer()

	case KindButton:
		if len(args) < 1 {
			return
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return
		}
		n = g.Button(index)

	case KindKey:
		if len(args) < 1 {
			return
		}
		code, err := strconv.Atoi(args[0])
		if err != nil {
			return
		}
		n = g.Key(code)

	default:
		return
	}

	n.X = x
	n.Y = y
	g.renumber(n, id)
}

// renumber forces a loaded node to its persisted identity, keeping the
// output back references and the ID counter consistent.
func (g *Graph) renumber(n *Node, id int) {
	n.ID = id
	for _, out := range n.Outputs {
		out.Node = id
	}
	if id >= g.nextID {
		g.nextID = id + 1
	}
}

func (g *Graph) loadConn(fields []string) {
	if len(fields) < 4 {
		return
	}
	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return
		}
		nums[i] = n
	}
	// bad references skip the line, like any other malformed line
	_ = g.ConnectID(nums[0], nums[1], nums[2], nums[3])
}
