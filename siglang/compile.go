package siglang

import (
	"fmt"
	"math/rand/v2"

	"github.com/reusee/siglab/sig"
)

const (
	defaultScreenWidth  = 128
	defaultScreenHeight = 96

	layoutColumnWidth = 160
	layoutRowHeight   = 64
	layoutRows        = 12
)

type Options struct {
	// Random feeds Random nodes in the compiled graph; nil uses the
	// graph default.
	Random *rand.Rand

	// pixel buffer dimensions for screen sinks
	ScreenWidth  int
	ScreenHeight int
}

// Compiler parses a script and builds the equivalent dataflow graph as
// it goes. There is no separate syntax tree: parse events drive node
// spawning and wiring directly.
type Compiler struct {
	tokens []Token
	idx    int

	graph *sig.Graph

	// symbols maps each variable name to its current producer node.
	// It lives only for the duration of one compilation.
	symbols map[string]*sig.Node

	screenWidth  int
	screenHeight int

	col, row int
}

// Compile builds a fresh graph from the script. Compilation is atomic:
// either the whole script compiles and the graph is returned, or an
// error carrying the failing position is.
func Compile(name string, source string, options Options) (*sig.Graph, error) {
	c, err := compile(name, source, options)
	if err != nil {
		return nil, err
	}
	return c.graph, nil
}

func compile(name string, source string, options Options) (*Compiler, error) {
	if options.ScreenWidth <= 0 {
		options.ScreenWidth = defaultScreenWidth
	}
	if options.ScreenHeight <= 0 {
		options.ScreenHeight = defaultScreenHeight
	}
	c := &Compiler{
		tokens:       Lex(NewSource(name, source)),
		graph:        sig.NewGraph(options.Random),
		symbols:      make(map[string]*sig.Node),
		screenWidth:  options.ScreenWidth,
		screenHeight: options.ScreenHeight,
	}
	if err := c.block(nil, false); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Compiler) curr() Token {
	return c.tokens[c.idx]
}

func (c *Compiler) peek() Token {
	if c.idx+1 < len(c.tokens) {
		return c.tokens[c.idx+1]
	}
	return c.tokens[len(c.tokens)-1]
}

func (c *Compiler) advance() {
	if c.curr().Kind != TokenEOF {
		c.idx++
	}
}

func (c *Compiler) errorf(format string, args ...any) error {
	return WithPos(fmt.Errorf(format, args...), c.curr().Pos)
}

func (c *Compiler) matchPunct(text string) bool {
	t := c.curr()
	if t.Kind == TokenPunct && t.Text == text {
		c.advance()
		return true
	}
	return false
}

func (c *Compiler) expectPunct(text string) error {
	if c.matchPunct(text) {
		return nil
	}
	return c.errorf("expected %q, got %q", text, c.curr().Text)
}

// wire connects ports that were just created by the compiler itself, so
// a failure here is a bug, not a script error.
func (c *Compiler) wire(src *sig.Node, srcSlot int, dst *sig.Node, dstSlot int) {
	if err := c.graph.Connect(src, srcSlot, dst, dstSlot); err != nil {
		panic(err)
	}
}

// place assigns the node a deterministic column/row layout position.
// The position has no effect on evaluation.
func (c *Compiler) place(n *sig.Node) *sig.Node {
	n.X = c.col * layoutColumnWidth
	n.Y = c.row * layoutRowHeight
	c.row++
	if c.row == layoutRows {
		c.row = 0
		c.col++
	}
	return n
}

func (c *Compiler) constant(value sig.Signal) *sig.Node {
	return c.place(c.graph.Constant(value))
}

// block parses statements until '}' (consumed) or, at the top level,
// end of input. cond is the effective condition enclosing the block,
// nil when unconditioned.
func (c *Compiler) block(cond *sig.Node, nested bool) error {
	for {
		t := c.curr()
		if t.Kind == TokenEOF {
			if nested {
				return c.errorf(`unexpected end of script, expected "}"`)
			}
			return nil
		}
		if nested && t.Kind == TokenPunct && t.Text == "}" {
			c.advance()
			return nil
		}
		if err := c.statement(cond); err != nil {
			return err
		}
	}
}

func (c *Compiler) statement(cond *sig.Node) error {
	t := c.curr()
	if t.Kind == TokenIdentifier {
		switch t.Text {
		case "var", "int", "float":
			return c.varDecl()
		case "if":
			return c.ifStmt(cond)
		}
		next := c.peek()
		if next.Kind == TokenPunct && next.Text == "(" {
			return c.call(cond)
		}
		if next.Kind == TokenOperator && next.Text == "=" {
			return c.assign(cond)
		}
	}
	// unrecognized tokens are skipped
	c.advance()
	return nil
}

// varDecl binds the name unconditionally: a declaration introduces the
// variable even inside a conditioned block.
func (c *Compiler) varDecl() error {
	c.advance() // keyword
	t := c.curr()
	if t.Kind != TokenIdentifier {
		return c.errorf("expected variable name, got %q", t.Text)
	}
	name := t.Text
	c.advance()

	var producer *sig.Node
	if t := c.curr(); t.Kind == TokenOperator && t.Text == "=" {
		c.advance()
		var err error
		producer, err = c.expr()
		if err != nil {
			return err
		}
	} else {
		producer = c.constant(0)
	}
	c.symbols[name] = producer

	c.matchPunct(";")
	return nil
}

func (c *Compiler) ifStmt(cond *sig.Node) error {
	c.advance() // if
	if err := c.expectPunct("("); err != nil {
		return err
	}
	condition, err := c.expr()
	if err != nil {
		return err
	}
	if err := c.expectPunct(")"); err != nil {
		return err
	}

	// nested conditions AND together
	if cond != nil {
		and := c.place(c.graph.Logic(sig.LogicAnd))
		c.wire(cond, 0, and, 0)
		c.wire(condition, 0, and, 1)
		condition = and
	}

	if err := c.expectPunct("{"); err != nil {
		return err
	}
	return c.block(condition, true)
}

func (c *Compiler) assign(cond *sig.Node) error {
	name := c.curr().Text
	c.advance() // name
	c.advance() // =

	producer, err := c.expr()
	if err != nil {
		return err
	}

	if cond == nil {
		c.symbols[name] = producer
	} else {
		// Conditional assignment becomes a data-driven merge: both
		// sides are computed every tick, the condition selects one.
		prior, bound := c.symbols[name]
		if !bound {
			prior = c.constant(0)
		}
		sel := c.place(c.graph.Math(sig.MathSelect))
		c.wire(cond, 0, sel, 0)
		c.wire(producer, 0, sel, 1)
		c.wire(prior, 0, sel, 2)
		c.symbols[name] = sel
	}

	c.matchPunct(";")
	return nil
}

func (c *Compiler) call(cond *sig.Node) error {
	nameTok := c.curr()

	var spawn func() *sig.Node
	switch nameTok.Text {
	case "beep":
		spawn = c.graph.Beep
	case "plot":
		spawn = func() *sig.Node {
			return c.graph.Screen(c.screenWidth, c.screenHeight)
		}
	default:
		return WithPos(fmt.Errorf("unknown function %q", nameTok.Text), nameTok.Pos)
	}
	c.advance()

	if err := c.expectPunct("("); err != nil {
		return err
	}
	var args []*sig.Node
	if t := c.curr(); !(t.Kind == TokenPunct && t.Text == ")") {
		for {
			arg, err := c.expr()
			if err != nil {
				return err
			}
			args = append(args, arg)
			if !c.matchPunct(",") {
				break
			}
		}
	}
	if err := c.expectPunct(")"); err != nil {
		return err
	}
	c.matchPunct(";")

	// the sink triggers on the effective condition, or always when
	// unconditioned
	trigger := cond
	if trigger == nil {
		trigger = c.constant(1)
	}

	sink := c.place(spawn())
	c.wire(trigger, 0, sink, 0)
	for i, arg := range args {
		if i+1 >= len(sink.Inputs) {
			return WithPos(fmt.Errorf("too many arguments to %q", nameTok.Text), nameTok.Pos)
		}
		c.wire(arg, 0, sink, i+1)
	}
	return nil
}
