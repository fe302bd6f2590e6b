// Package schread implements the parser contract spec.md §6.1 describes as
// an external collaborator: read(path, format?) -> Revision. The pipeline
// itself never inspects file formats; it only consumes the Revision/Object
// shape defined here, so any Reader implementation is interchangeable.
package schread

import "fmt"

// ObjectKind tags the primitive graphical objects a Revision is made of.
type ObjectKind int

// Object kinds.
const (
	KindComponent ObjectKind = iota
	KindNetSegment
	KindFloatingText
)

// PinObject is a pin belonging to a Component object. Segment names the
// wire-connectivity group (a KindNetSegment object's SegmentID) this pin is
// geometrically tied to in the source file; it is not itself a schematic
// attribute and never appears in Attached.
type PinObject struct {
	Number   string
	Segment  string
	Attached []string
}

// Object is one top-level primitive in a Revision: a placed component, a
// net segment, or a floating (unattached) text object. Attached holds the
// raw "name=value" attribute strings textually attached to this object.
type Object struct {
	Kind ObjectKind
	// SymbolRef identifies the library symbol (KindComponent only).
	SymbolRef string
	// SegmentID is this net segment's connectivity identifier
	// (KindNetSegment only); PinObject.Segment values reference it.
	SegmentID string
	Attached  []string
	// Pins holds the component's exposed pins (KindComponent only).
	Pins []PinObject
}

// Revision is the parsed contents of one schematic or symbol file.
type Revision struct {
	Objects []Object
}

// Reader parses a schematic or symbol file into a Revision.
type Reader interface {
	Read(path string) (*Revision, error)
}

// UnsupportedFormatError is returned by Dispatch for an unrecognized file
// extension.
type UnsupportedFormatError struct {
	Path string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unrecognized schematic file format: %s", e.Path)
}
