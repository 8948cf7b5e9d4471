package sig

import (
	"bytes"
	"strings"
	"testing"
)

func buildTestGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(nil)
	c := g.Constant(3.5)
	c.X, c.Y = 10, 20
	m := g.Math(MathSelect)
	l := g.Logic(LogicXor)
	timer := g.Timer()
	counter := g.Counter()
	beep := g.Beep()
	screen := g.Screen(16, 12)
	color := g.Color()
	random := g.Random()
	pointer := g.Pointer()
	button := g.Button(2)
	key := g.Key(65)

	connect := func(src *Node, srcSlot int, dst *Node, dstSlot int) {
		if err := g.Connect(src, srcSlot, dst, dstSlot); err != nil {
			t.Fatal(err)
		}
	}
	connect(c, 0, m, 0)
	connect(random, 0, m, 1)
	connect(c, 0, l, 0)
	connect(pointer, 1, screen, 2)
	connect(color, 0, screen, 3)
	connect(button, 0, counter, 0)
	connect(key, 0, counter, 2)
	connect(timer, 0, beep, 1)
	return g
}

type connTuple struct {
	srcID, srcSlot, dstID, dstSlot int
}

func collectConns(g *Graph) map[connTuple]bool {
	conns := make(map[connTuple]bool)
	for _, n := range g.Nodes() {
		for slot, in := range n.Inputs {
			for _, src := range in.sources {
				conns[connTuple{src.Node, src.Slot, n.ID, slot}] = true
			}
		}
	}
	return conns
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := buildTestGraph(t)

	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded.Nodes()) != len(g.Nodes()) {
		t.Fatalf("got %d nodes, want %d", len(loaded.Nodes()), len(g.Nodes()))
	}
	for _, want := range g.Nodes() {
		got := loaded.NodeByID(want.ID)
		if got == nil {
			t.Fatalf("missing node %d", want.ID)
		}
		if got.Kind != want.Kind {
			t.Fatalf("node %d: got kind %s, want %s", want.ID, got.Kind, want.Kind)
		}
		if got.X != want.X || got.Y != want.Y {
			t.Fatalf("node %d: got position %d,%d", want.ID, got.X, got.Y)
		}
		if got.Value != want.Value ||
			got.MathOp != want.MathOp ||
			got.LogicOp != want.LogicOp ||
			got.Index != want.Index ||
			got.Width != want.Width ||
			got.Height != want.Height {
			t.Fatalf("node %d: kind data differs", want.ID)
		}
	}

	want := collectConns(g)
	got := collectConns(loaded)
	if len(got) != len(want) {
		t.Fatalf("got %d connections, want %d", len(got), len(want))
	}
	for conn := range want {
		if !got[conn] {
			t.Fatalf("missing connection %v", conn)
		}
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"SIGLAB 1",
		"NODE 0 constant 0 0 1.5",
		"garbage",
		"NODE x constant 0 0 1", // bad id
		"NODE 1 nosuchkind 0 0", // unknown kind
		"NODE 2 constant 0 0",   // missing value
		"NODE 3 math 0 0 add",
		"CONN 0 0 3 0",
		"CONN 0 0 99 0", // unknown target
		"CONN 0 9 3 0",  // bad slot
		"CONN a b c d",
		"",
	}, "\n")

	g, err := Load(strings.NewReader(text), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.Nodes()); n != 2 {
		t.Fatalf("got %d nodes", n)
	}
	add := g.NodeByID(3)
	if add == nil {
		t.Fatal("missing node 3")
	}
	if n := len(add.Inputs[0].sources); n != 1 {
		t.Fatalf("got %d sources", n)
	}

	g.Tick(0, InputState{})
	g.Tick(0, InputState{})
	if v := add.Out(0); v != 1.5 {
		t.Fatalf("got %v", v)
	}
}

func TestLoadPreservesInsertionOrder(t *testing.T) {
	g := buildTestGraph(t)
	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range g.Nodes() {
		if loaded.Nodes()[i].ID != n.ID {
			t.Fatalf("order differs at %d", i)
		}
	}
}
