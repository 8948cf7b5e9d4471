package sig

// OutputPort holds the last value written by its owning node's evaluation.
// Node and Slot are non-owning back references, used by serialization and
// by connection scrubbing.
type OutputPort struct {
	Name  string
	Node  int
	Slot  int
	Value Signal
}

// InputPort holds references to zero or more output ports. Fan-in is
// permitted; a given source is connected at most once.
type InputPort struct {
	Name    string
	sources []*OutputPort
}

func (p *InputPort) connect(source *OutputPort) {
	for _, s := range p.sources {
		if s == source {
			return
		}
	}
	p.sources = append(p.sources, source)
}

// Value resolves fan-in by taking the maximum across all connected
// sources. With no source it yields the neutral 0.
func (p *InputPort) Value() Signal {
	if len(p.sources) == 0 {
		return 0
	}
	max := p.sources[0].Value
	for _, s := range p.sources[1:] {
		if s.Value > max {
			max = s.Value
		}
	}
	return max
}

func (p *InputPort) on() bool {
	return on(p.Value())
}

func (p *InputPort) Sources() []*OutputPort {
	return p.sources
}

func (p *InputPort) scrub(nodeID int) {
	kept := p.sources[:0]
	for _, s := range p.sources {
		if s.Node != nodeID {
			kept = append(kept, s)
		}
	}
	p.sources = kept
}
