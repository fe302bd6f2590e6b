package backend

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rlutz/gnetgo/pkg/netlist"
)

// SpiceBackend emits a flat SPICE deck, one card per package. It follows
// the same one-package-one-device assumption tEDAx's pinidx field
// documents (gnet_tedax.py's comment on "spice_noqsi"): a package's pins
// are ordered by their pinseq= attribute to produce the device's node
// list, and the card is the package's refdes, that node list, then its
// value= attribute if set. device= is not consulted.
type SpiceBackend struct{}

// Run implements Backend.
func (SpiceBackend) Run(w io.Writer, nl *netlist.Netlist) error {
	if _, err := fmt.Fprintln(w, "* netlist"); err != nil {
		return err
	}

	for _, pkg := range nl.Packages {
		if err := writeSpiceCard(w, pkg); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, ".end")

	return err
}

func writeSpiceCard(w io.Writer, pkg *netlist.Package) error {
	pins := append([]*netlist.PackagePin(nil), pkg.Pins...)
	sort.Slice(pins, func(i, j int) bool {
		return pinseq(pins[i]) < pinseq(pins[j])
	})

	nodes := ""

	for _, pin := range pins {
		name := "0"
		if pin.Net != nil {
			name = pin.Net.Name
		}

		nodes += " " + name
	}

	value := pkg.GetAttribute("value", "")
	if value != "" {
		value = " " + value
	}

	_, err := fmt.Fprintf(w, "%s%s%s\n", pkg.Refdes, nodes, value)

	return err
}

// pinseq returns pin's pinseq= attribute as an integer, or a value larger
// than any real pinseq if absent or malformed, so unordered pins sort last
// without disturbing an otherwise fully pinseq'd package.
func pinseq(pin *netlist.PackagePin) int {
	raw := pin.GetAttribute("pinseq", "")
	if raw == "" {
		return 1 << 30
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1 << 30
	}

	return n
}
