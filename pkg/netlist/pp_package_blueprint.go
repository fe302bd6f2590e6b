package netlist

import (
	"github.com/rlutz/gnetgo/pkg/attrib"
	"github.com/rlutz/gnetgo/pkg/sch"
)

// postprocPackageBlueprints validates cross-cutting consistency rules that
// only make sense once the other blueprint passes have run, per spec.md
// §4.2.6, grounded on the "look for component type conflicts" block of
// original_source/src/gaf/netlist/netlist.py. It also collects param=
// attributes into Component.Parameters, a feature original_source carries
// that spec.md's distillation dropped (restored per SPEC_FULL.md).
func postprocPackageBlueprints(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, c := range s.Components {
			if len(c.CompositeSources) > 0 && c.IsGraphical {
				c.Warn("source= is set for graphical component")
				c.CompositeSources = nil
			}

			if c.HasNetnameAttrib && c.HasPortnameAttrib {
				c.Error("netname= and portname= attributes are mutually exclusive")
			}

			if c.HasNetnameAttrib && len(c.CompositeSources) > 0 {
				c.Error("power symbol can't be a subschematic")
				c.CompositeSources = nil
			}

			if c.HasPortnameAttrib && len(c.CompositeSources) > 0 {
				c.Error("I/O symbol can't be a subschematic")
				c.CompositeSources = nil
			}

			if c.HasNetnameAttrib && c.IsGraphical {
				c.Error("power symbol can't be graphical")
			}

			if c.HasPortnameAttrib && c.IsGraphical {
				c.Error("I/O symbol can't be graphical")
			}

			collectParameters(c)
		}
	}
}

func collectParameters(c *sch.Component) {
	c.Parameters = make(map[string]string)

	for _, search := range []func(string) []string{c.SearchInherited, c.SearchAttached} {
		seen := make(map[string]bool)

		for _, raw := range search("param") {
			pair, err := attrib.Parse(raw)
			if err != nil {
				c.Error("malformed param= attribute: " + raw)
				continue
			}

			if seen[pair.Name] {
				c.Error("duplicate param= attribute: " + pair.Name)
				continue
			}

			c.Parameters[pair.Name] = pair.Value
			seen[pair.Name] = true
		}
	}
}
