// Package symlib is a narrow stand-in for the component-library (symbol)
// lookup service, which spec.md §1 treats as an external collaborator. The
// pipeline only ever needs the attributes a symbol promotes to its
// instances (chiefly slotdef=, consulted by the slotting pass); a single
// in-memory map is enough to exercise that without building a real library
// loader.
package symlib

import "github.com/rlutz/gnetgo/pkg/attrib"

// Library maps a symbol reference (as named by a component's SymbolRef) to
// the attributes its symbol promotes to every instance.
type Library struct {
	promoted map[string]attrib.Dict
}

// New constructs an empty symbol library.
func New() *Library {
	return &Library{promoted: make(map[string]attrib.Dict)}
}

// Register records the promoted attribute set for a symbol reference.
func (l *Library) Register(symbolRef string, promoted attrib.Dict) {
	l.promoted[symbolRef] = promoted
}

// Promoted returns the attributes a symbol promotes to its instances, or a
// zero Dict if the symbol is unknown.
func (l *Library) Promoted(symbolRef string) attrib.Dict {
	return l.promoted[symbolRef]
}
