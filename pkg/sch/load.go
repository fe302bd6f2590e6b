package sch

import (
	"github.com/rlutz/gnetgo/pkg/attrib"
	"github.com/rlutz/gnetgo/pkg/schread"
	"github.com/rlutz/gnetgo/pkg/symlib"
)

// FromRevision builds a Schematic from a parsed Revision, the shape every
// schread.Reader produces. Malformed attributes are recorded as warnings
// on the schematic itself and otherwise skipped, per §7's BlueprintError
// policy; FromRevision itself never fails.
func FromRevision(filename string, rev *schread.Revision, symbols *symlib.Library) *Schematic {
	s := &Schematic{Filename: filename, Ports: make(map[string][]*Component)}

	segments := make(map[string]*NetSegment)

	segment := func(id string) *NetSegment {
		if id == "" {
			return nil
		}

		seg, ok := segments[id]
		if !ok {
			seg = &NetSegment{Schematic: s}
			segments[id] = seg
			s.Nets = append(s.Nets, seg)
		}

		return seg
	}

	for _, obj := range rev.Objects {
		switch obj.Kind {
		case schread.KindFloatingText:
			addAttrs(&s.FloatingAttribs, obj.Attached, s, nil)

		case schread.KindNetSegment:
			seg := segment(obj.SegmentID)
			addAttrs(nil, obj.Attached, s, seg)

		case schread.KindComponent:
			s.Components = append(s.Components, componentFromObject(s, obj, segment, symbols))
		}
	}

	return s
}

// addAttrs parses raw "name=value" strings into dict (if non-nil),
// recording netname= contributions onto seg (if non-nil) and malformed
// attributes as schematic-level warnings.
func addAttrs(dict *attrib.Dict, raw []string, s *Schematic, seg *NetSegment) {
	for _, r := range raw {
		p, err := attrib.Parse(r)
		if err != nil {
			s.Warn(err.Error())
			continue
		}

		if dict != nil {
			dict.Add(p.Name, p.Value)
		}

		if seg != nil && p.Name == "netname" {
			seg.NamesFromNetname = append(seg.NamesFromNetname, p.Value)
		}
	}
}

func componentFromObject(s *Schematic, obj schread.Object,
	segment func(string) *NetSegment, symbols *symlib.Library) *Component {
	c := &Component{Schematic: s, SymbolRef: obj.SymbolRef}

	if symbols != nil {
		c.Inherited = symbols.Promoted(obj.SymbolRef)
	}

	addAttrs(&c.Attached, obj.Attached, s, nil)

	if c.Attached.Has("refdes") {
		v := c.Attached.Get("refdes", "")
		c.Refdes = &v
	}

	if c.Attached.Has("slot") {
		v := c.Attached.Get("slot", "")
		c.Slot = &v
	}

	for _, pobj := range obj.Pins {
		pin := &Pin{Component: c, Number: pobj.Number}
		addAttrs(&pin.Attribs, pobj.Attached, s, nil)
		pin.Pinlabel = pin.Attribs.Get("pinlabel", "")

		if seg := segment(pobj.Segment); seg != nil {
			seg.AddPin(pin)
		}

		c.Pins = append(c.Pins, pin)
	}

	return c
}
