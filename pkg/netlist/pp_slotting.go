package netlist

import (
	"strconv"
	"strings"
)

// postprocSlotting resolves slot=/slotdef= into per-instance pin-number
// remapping, per spec.md §4.2.3. A component with slot=N has its pins
// renumbered in place to the N-th slot's pin list, as declared by its
// symbol's slotdef=N:p1,p2,... attribute. Duplicate slot usage within one
// package can't be detected here — packages don't exist yet — so it is
// re-checked in the packaging pass (package.go's checkSlotDuplicates, via a
// bits-and-blooms bitset) once components sharing a refdes are grouped.
func postprocSlotting(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			if c.Slot == nil {
				continue
			}

			slotNum, err := strconv.Atoi(strings.TrimSpace(*c.Slot))
			if err != nil {
				c.Error("malformed slot= attribute: " + *c.Slot)
				continue
			}

			pins, ok, malformed := findSlotdef(c.Inherited.GetAll("slotdef"), slotNum)
			switch {
			case malformed != "":
				c.Error("malformed slotdef= attribute: " + malformed)
			case !ok:
				c.Error("missing slotdef for slot " + *c.Slot)
			case len(pins) != len(c.Pins):
				c.Error("slotdef pin count does not match symbol pin count")
			default:
				for i, newNumber := range pins {
					c.Pins[i].Number = newNumber
				}
			}
		}
	}
}

// findSlotdef looks for a "N:p1,p2,..." entry matching slotNum among raw
// slotdef= values, returning its pin list. malformed is non-empty if an
// entry couldn't be parsed at all.
func findSlotdef(raw []string, slotNum int) (pins []string, found bool, malformed string) {
	for _, entry := range raw {
		idx := strings.IndexByte(entry, ':')
		if idx < 0 {
			return nil, false, entry
		}

		n, err := strconv.Atoi(strings.TrimSpace(entry[:idx]))
		if err != nil {
			return nil, false, entry
		}

		if n != slotNum {
			continue
		}

		return strings.Split(entry[idx+1:], ","), true, ""
	}

	return nil, false, ""
}
