package netlist

// Repackage repeats grouping with a caller-supplied refdes function,
// without mutating nl, per spec.md §4.6's repackage entry-point, grounded
// on original_source's util_repackage.py. refdesFunc returning ok=false
// drops the component from the returned packages; if the component's
// blueprint normally carries a refdes, that drop is reported as a warning
// through a Reporter prefixed "(re-packaged) ", mirroring
// util_repackage.py's subclassed error()/warn() message prefix.
func Repackage(nl *Netlist, refdesFunc func(*Component) (string, bool)) []*Package {
	reporter := &prefixedReporter{inner: nl.Reporter, prefix: "(re-packaged) "}

	// groupComponents records every new PackagePin on its Net's
	// Connections; restore them afterwards so nl's nets are left as found.
	saved := make(map[*Net][]*PackagePin)
	for _, c := range nl.Components {
		for _, cp := range c.CPins {
			if cp.LocalNet != nil && cp.LocalNet.Net != nil {
				saved[cp.LocalNet.Net] = cp.LocalNet.Net.Connections
			}
		}
	}

	defer func() {
		for n, conns := range saved {
			n.Connections = conns
		}
	}()

	return groupComponents(nl.Components, reporter, func(c *Component) (string, bool) {
		refdes, ok := refdesFunc(c)
		if !ok {
			if blueprintRequiresRefdes(c) {
				warn(reporter, CategoryBlueprint, c.Refdes,
					"component dropped from re-packaging despite normally requiring a refdes")
			}

			return "", false
		}

		return namespaceKey(c.Sheet.Namespace) + "\x00" + refdes, true
	}, func(c *Component) string {
		refdes, _ := refdesFunc(c)
		return refdes
	})
}

// blueprintRequiresRefdes reports whether c's blueprint would normally be
// packaged under a refdes during ordinary extraction, grounded on
// original_source/xorn/src/backend/util_repackage.py's
// blueprint_requires_refdes: graphical components, netname=/portname=
// carriers, and components with a net=-attributed pin are never expected
// to carry a refdes, so dropping them during re-packaging isn't worth a
// warning.
func blueprintRequiresRefdes(c *Component) bool {
	bc := c.Blueprint
	if bc.IsGraphical || bc.HasNetnameAttrib || bc.HasPortnameAttrib {
		return false
	}

	for _, cp := range c.CPins {
		if cp.Blueprint.HasNetAttrib {
			return false
		}
	}

	return true
}
