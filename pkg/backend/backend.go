// Package backend implements the output-side contract spec.md §6.2
// describes: a read-only view of a finished netlist.Netlist, consumed by
// swappable writers (tEDAx interchange, SPICE decks, ...).
package backend

import (
	"io"

	"github.com/rlutz/gnetgo/pkg/netlist"
)

// Backend writes a finished netlist to w.
type Backend interface {
	Run(w io.Writer, nl *netlist.Netlist) error
}

// ByName resolves a backend by its command-line name.
func ByName(name string) (Backend, bool) {
	switch name {
	case "tedax":
		return TedaxBackend{}, true
	case "spice":
		return SpiceBackend{}, true
	default:
		return nil, false
	}
}
