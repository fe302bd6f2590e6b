package netlist

// postprocPower recognizes netname=-bearing components as implicit net
// labels (new-style power symbols), per spec.md §4.2.1, grounded on
// original_source/xorn/src/gaf/netlist/pp_power.py.
func postprocPower(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			netname := c.GetAttribute("netname", "")
			if !c.Attached.Has("netname") && !c.Inherited.Has("netname") {
				continue
			}

			if c.Refdes != nil {
				c.Error("refdes= and netname= attributes are mutually exclusive")
			}

			if c.HasNetAttrib() {
				c.Error("netname= and net= attributes are mutually exclusive")
			}

			if len(c.Pins) == 0 {
				c.Error("power symbol doesn't have pins")
			}

			if len(c.Pins) > 1 {
				c.Error("multiple pins on power symbol")
			}

			for _, p := range c.Pins {
				if p.Net != nil {
					p.Net.NamesFromNetname = append(p.Net.NamesFromNetname, netname)
				}
			}

			c.HasNetnameAttrib = true
		}
	}
}
