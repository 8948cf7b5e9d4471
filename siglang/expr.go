package siglang

import (
	"fmt"
	"strconv"

	"github.com/reusee/siglab/sig"
)

// expr parses a strictly left-associative operator chain. There is no
// precedence between + - * / > <: the chain folds left, and the graph
// shape reflects that.
func (c *Compiler) expr() (*sig.Node, error) {
	left, err := c.term()
	if err != nil {
		return nil, err
	}

	for c.curr().Kind == TokenOperator {
		opText := c.curr().Text
		switch opText {
		case "+", "-", "*", "/", ">", "<":
		default:
			// not an expression operator, leave it for the caller
			return left, nil
		}
		c.advance()

		right, err := c.term()
		if err != nil {
			return nil, err
		}

		var node *sig.Node
		switch opText {
		case "+":
			node = c.graph.Math(sig.MathAdd)
		case "-":
			node = c.graph.Math(sig.MathSub)
		case "*":
			node = c.graph.Math(sig.MathMul)
		case "/":
			node = c.graph.Math(sig.MathDiv)
		case ">":
			node = c.graph.Logic(sig.LogicGt)
		case "<":
			node = c.graph.Logic(sig.LogicLt)
		}
		c.place(node)
		c.wire(left, 0, node, 0)
		c.wire(right, 0, node, 1)
		left = node
	}

	return left, nil
}

func (c *Compiler) term() (*sig.Node, error) {
	t := c.curr()
	switch t.Kind {

	case TokenNumber:
		value, err := strconv.ParseFloat(t.Text, 32)
		if err != nil {
			return nil, WithPos(fmt.Errorf("bad number %q", t.Text), t.Pos)
		}
		c.advance()
		return c.constant(sig.Signal(value)), nil

	case TokenIdentifier:
		if t.Text == "abs" {
			if next := c.peek(); next.Kind == TokenPunct && next.Text == "(" {
				c.advance()
				c.advance()
				inner, err := c.expr()
				if err != nil {
					return nil, err
				}
				if err := c.expectPunct(")"); err != nil {
					return nil, err
				}
				node := c.place(c.graph.Math(sig.MathAbs))
				c.wire(inner, 0, node, 0)
				return node, nil
			}
		}
		c.advance()
		if producer, ok := c.symbols[t.Text]; ok {
			return producer, nil
		}
		// undeclared names read as an unbound zero source
		return c.constant(0), nil

	case TokenPunct:
		if t.Text == "(" {
			c.advance()
			inner, err := c.expr()
			if err != nil {
				return nil, err
			}
			if err := c.expectPunct(")"); err != nil {
				return nil, err
			}
			return inner, nil
		}

	}
	return nil, WithPos(fmt.Errorf("unexpected %q in expression", t.Text), t.Pos)
}
