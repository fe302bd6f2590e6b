package netlist

// postprocHierarchyBlueprints recognizes portname=-bearing components as
// I/O ports and indexes them per schematic, per spec.md §4.2.2, grounded on
// original_source/xorn/src/gaf/netlist/pp_hierarchy.py's
// postproc_blueprints.
func postprocHierarchyBlueprints(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			if !c.Attached.Has("portname") && !c.Inherited.Has("portname") {
				continue
			}

			portname := c.GetAttribute("portname", "")

			if c.Refdes != nil {
				c.Error("refdes= and portname= attributes are mutually exclusive")
			}

			if c.HasNetAttrib() {
				c.Error("portname= and net= attributes are mutually exclusive")
			}

			if len(c.Pins) == 0 {
				c.Error("I/O symbol doesn't have pins")
			}

			if len(c.Pins) > 1 {
				c.Error("multiple pins on I/O symbol")
			}

			s.Ports[portname] = append(s.Ports[portname], c)
			c.HasPortnameAttrib = true
		}
	}
}
