package sch

// NetSegment is a page-local group of electrically connected pins, as drawn
// by wire segments on the schematic. It is the unit the instance layer
// groups into LocalNets.
type NetSegment struct {
	Schematic *Schematic
	// Pins is the ordered list of blueprint pins tied together by this
	// segment.
	Pins []*Pin
	// NamesFromNetname holds candidate net names contributed by attached
	// netname= attributes, whether attached directly to the wire or to
	// a power-symbol component, in document order, duplicates allowed.
	NamesFromNetname []string
	// NamesFromNetattrib holds candidate net names contributed by a
	// component's net=Name:pinlist attribute (the net-attribute pass);
	// always a single name, since each such attribute fabricates its
	// own fresh segment.
	NamesFromNetattrib []string

	diagnostics []Diagnostic
}

// AddPin links a pin into this segment, setting the back-reference and
// detaching it from any segment it previously belonged to.
func (n *NetSegment) AddPin(p *Pin) {
	if p.Net != nil && p.Net != n {
		p.Net.removePin(p)
	}

	n.Pins = append(n.Pins, p)
	p.Net = n
}

func (n *NetSegment) removePin(p *Pin) {
	for i, pin := range n.Pins {
		if pin == p {
			n.Pins = append(n.Pins[:i], n.Pins[i+1:]...)
			return
		}
	}
}

func (n *NetSegment) diag(sev Severity, msg string) {
	n.diagnostics = append(n.diagnostics, Diagnostic{sev, "<net segment>", msg})
}

// Warn records a non-fatal diagnostic against this net segment.
func (n *NetSegment) Warn(msg string) { n.diag(SeverityWarning, msg) }

// Error records a fatal diagnostic against this net segment.
func (n *NetSegment) Error(msg string) { n.diag(SeverityError, msg) }
