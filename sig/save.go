package sig

import (
	"bufio"
	"fmt"
	"io"
)

const fileHeader = "SIGLAB 1"

// Save writes the graph as plain text: a version header, one NODE line
// per node, one CONN line per connection.
func (g *Graph) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, fileHeader)
	for _, n := range g.nodes {
		fmt.Fprintf(bw, "NODE %d %s %d %d", n.ID, n.Kind, n.X, n.Y)
		switch n.Kind {
		case KindConstant:
			fmt.Fprintf(bw, " %g", n.Value)
		case KindMath:
			fmt.Fprintf(bw, " %s", n.MathOp)
		case KindLogic:
			fmt.Fprintf(bw, " %s", n.LogicOp)
		case KindScreen:
			fmt.Fprintf(bw, " %d %d", n.Width, n.Height)
		case KindButton, KindKey:
			fmt.Fprintf(bw, " %d", n.Index)
		}
		fmt.Fprintln(bw)
	}
	for _, n := range g.nodes {
		for slot, in := range n.Inputs {
			for _, src := range in.sources {
				fmt.Fprintf(bw, "CONN %d %d %d %d\n", src.Node, src.Slot, n.ID, slot)
			}
		}
	}
	return bw.Flush()
}
