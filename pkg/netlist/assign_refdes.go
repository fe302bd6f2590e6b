package netlist

// assignRefdes sets every surviving Component's mangled Refdes from its
// blueprint's bare refdes= value and its sheet's namespace, per spec.md
// §4.7. Components with no blueprint refdes (graphical symbols, unmatched
// power/port components the earlier passes didn't already strip) are left
// with an empty Refdes and are skipped by packaging. Per
// netlist.py's "None if flat_package_namespace else component.sheet.
// namespace", FlatPackageNamespace suppresses the namespace tag entirely
// rather than just collapsing buildPackages' grouping key, so that
// cross-sheet instances meant to share one flat package end up with the
// same mangled refdes.
func assignRefdes(nl *Netlist) {
	for _, c := range nl.Components {
		if c.Blueprint.Refdes == nil {
			continue
		}

		namespace := c.Sheet.Namespace
		if nl.Config.FlatPackageNamespace {
			namespace = nil
		}

		c.Refdes = nl.Config.RefdesMangle(*c.Blueprint.Refdes, namespace)
	}
}
