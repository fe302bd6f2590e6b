package netlist

import "strings"

// postprocNetattrib consumes net=Name:pinlist attributes on components,
// per spec.md §4.2.4. Each occurrence fabricates a fresh NetSegment named
// Name and links the listed pin numbers into it, creating virtual pins for
// any number that doesn't already exist on the component.
func postprocNetattrib(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			for _, raw := range c.GetAttributes("net") {
				idx := strings.IndexByte(raw, ':')
				if idx < 0 {
					c.Error("malformed net= attribute: " + raw)
					continue
				}

				name := raw[:idx]
				numbers := strings.Split(raw[idx+1:], ",")

				if len(numbers) == 0 || (len(numbers) == 1 && numbers[0] == "") {
					c.Error("net= attribute names no pins: " + raw)
					continue
				}

				seg := s.NewNetSegment()
				seg.NamesFromNetattrib = append(seg.NamesFromNetattrib, name)

				for _, num := range numbers {
					num = strings.TrimSpace(num)
					pin := c.FindOrCreatePin(num)
					pin.HasNetAttrib = true
					seg.AddPin(pin)
				}
			}
		}
	}
}
