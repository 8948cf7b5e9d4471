package sig

import "testing"

func TestFanInMaximum(t *testing.T) {
	g := NewGraph(nil)
	a := g.Constant(0.2)
	b := g.Constant(0.9)
	c := g.Constant(0.5)
	sum := g.Math(MathAdd)
	for _, src := range []*Node{a, b, c} {
		if err := g.Connect(src, 0, sum, 0); err != nil {
			t.Fatal(err)
		}
	}
	g.Tick(0, InputState{})
	if v := sum.Inputs[0].Value(); v != 0.9 {
		t.Fatalf("got %v", v)
	}
}

func TestUnconnectedInputIsZero(t *testing.T) {
	g := NewGraph(nil)
	n := g.Math(MathAdd)
	if v := n.Inputs[0].Value(); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestDuplicateConnection(t *testing.T) {
	g := NewGraph(nil)
	src := g.Constant(1)
	dst := g.Math(MathAdd)
	for range 3 {
		if err := g.Connect(src, 0, dst, 0); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(dst.Inputs[0].sources); n != 1 {
		t.Fatalf("got %d sources", n)
	}
}
