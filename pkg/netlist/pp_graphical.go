package netlist

// postprocGraphicalBlueprints marks components with graphical=1, per
// spec.md §4.2.5.
func postprocGraphicalBlueprints(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			if c.GetAttribute("graphical", "") == "1" {
				c.IsGraphical = true
			}
		}
	}
}

// postprocGraphicalInstances strips graphical component instances from
// electrical consideration once the instance tree and nets exist: they
// retain presence on their blueprint/sheet for reporting purposes but are
// excluded from netlist.Components and therefore from packaging.
func postprocGraphicalInstances(nl *Netlist) {
	var kept []*Component

	for _, c := range nl.Components {
		if c.IsGraphical {
			continue
		}

		kept = append(kept, c)
	}

	nl.Components = kept
}
