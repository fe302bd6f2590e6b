package schread

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// legacyLexer defines the lexical structure of the legacy text schematic
// format (".sch"/".sym"): a line-oriented record format predating the XML
// variant. Grounded on the rule-table lexer style used for BSDL parsing.
var legacyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "KwComponent", Pattern: `(?i)\bcomponent\b`},
	{Name: "KwNet", Pattern: `(?i)\bnet\b`},
	{Name: "KwFloating", Pattern: `(?i)\bfloating\b`},
	{Name: "KwAttr", Pattern: `(?i)\battr\b`},
	{Name: "KwPin", Pattern: `(?i)\bpin\b`},
	{Name: "KwEnd", Pattern: `(?i)\bend\b`},
	{Name: "AttrString", Pattern: `[A-Za-z_][\w.\-]*=[^\s]*`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_][\w.\-]*`},
})

// pinDecl is one "pin <number> <attrstring>*" line inside a component block.
type pinDecl struct {
	Number string   `KwPin @Ident`
	Fields []string `@AttrString*`
}

// componentDecl is a "component <symbolref> ... end" block.
type componentDecl struct {
	Symbol string     `KwComponent @Ident`
	Attrs  []string   `(KwAttr @AttrString)*`
	Pins   []*pinDecl `@@*`
	End    struct{}   `KwEnd`
}

// netSegmentDecl is a "net <segmentid> ... end" block, used to attach
// attributes (chiefly netname=) to a wire-connectivity group referenced by
// pins' segment= fields.
type netSegmentDecl struct {
	SegmentID string   `KwNet @Ident`
	Attrs     []string `(KwAttr @AttrString)*`
	End       struct{} `KwEnd`
}

// floatingDecl is a "floating ... end" block of page-level text not
// attached to any entity.
type floatingDecl struct {
	Kw    struct{} `KwFloating`
	Attrs []string `(KwAttr @AttrString)*`
	End   struct{} `KwEnd`
}

type entry struct {
	Component *componentDecl  `  @@`
	Net       *netSegmentDecl `| @@`
	Floating  *floatingDecl   `| @@`
}

type legacyFile struct {
	Entries []*entry `@@*`
}

var legacyParser = participle.MustBuild[legacyFile](
	participle.Lexer(legacyLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// LegacyReader parses the legacy text schematic/symbol format.
type LegacyReader struct{}

// Read implements Reader.
func (LegacyReader) Read(path string) (*Revision, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := legacyParser.ParseBytes(path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	rev := &Revision{}

	for _, e := range f.Entries {
		switch {
		case e.Component != nil:
			rev.Objects = append(rev.Objects, componentObject(e.Component))
		case e.Net != nil:
			rev.Objects = append(rev.Objects, Object{
				Kind:      KindNetSegment,
				SegmentID: e.Net.SegmentID,
				Attached:  e.Net.Attrs,
			})
		case e.Floating != nil:
			rev.Objects = append(rev.Objects, Object{
				Kind:     KindFloatingText,
				Attached: e.Floating.Attrs,
			})
		}
	}

	return rev, nil
}

func componentObject(c *componentDecl) Object {
	obj := Object{
		Kind:      KindComponent,
		SymbolRef: c.Symbol,
		Attached:  c.Attrs,
	}

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

	return obj
}

func splitAttr(raw string) (name, value string, ok bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '=' {
			return raw[:i], raw[i+1:], true
		}
	}

	return "", "", false
}
