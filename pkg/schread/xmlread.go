package schread

import (
	"encoding/xml"
	"fmt"
	"os"
)

// The XML variant (".sch.xml"/".sym.xml") is a straightforward structural
// transliteration of the legacy format, so it is parsed with encoding/xml
// rather than a third-party library — see DESIGN.md for why stdlib is the
// right call here specifically.

type xmlPin struct {
	Number string   `xml:"number,attr"`
	Fields []string `xml:"field"`
}

type xmlComponent struct {
	Symbol string   `xml:"symbol,attr"`
	Attrs  []string `xml:"attr"`
	Pins   []xmlPin `xml:"pin"`
}

type xmlNetSegment struct {
	SegmentID string   `xml:"segment,attr"`
	Attrs     []string `xml:"attr"`
}

type xmlFloating struct {
	Attrs []string `xml:"attr"`
}

type xmlSchematic struct {
	XMLName    xml.Name        `xml:"schematic"`
	Components []xmlComponent  `xml:"component"`
	Nets       []xmlNetSegment `xml:"net"`
	Floating   []xmlFloating   `xml:"floating"`
}

// XMLReader parses the XML schematic/symbol variant.
type XMLReader struct{}

// Read implements Reader.
func (XMLReader) Read(path string) (*Revision, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc xmlSchematic

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	rev := &Revision{}

	for _, c := range doc.Components {
		obj := Object{Kind: KindComponent, SymbolRef: c.Symbol, Attached: c.Attrs}

		for _, p := range c.Pins {
			pin := PinObject{Number: p.Number}

			for _, field := range p.Fields {
				if name, value, ok := splitAttr(field); ok && name == "segment" {
					pin.Segment = value
					continue
				}

				pin.Attached = append(pin.Attached, field)
			}

			obj.Pins = append(obj.Pins, pin)
		}

		rev.Objects = append(rev.Objects, obj)
	}

	for _, n := range doc.Nets {
		rev.Objects = append(rev.Objects, Object{
			Kind: KindNetSegment, SegmentID: n.SegmentID, Attached: n.Attrs,
		})
	}

	for _, fl := range doc.Floating {
		rev.Objects = append(rev.Objects, Object{Kind: KindFloatingText, Attached: fl.Attrs})
	}

	return rev, nil
}
