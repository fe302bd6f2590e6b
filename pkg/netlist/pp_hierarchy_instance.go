package netlist

import "github.com/rlutz/gnetgo/pkg/sch"

// postprocHierarchyInstances splices composite components out of the
// instance tree once global nets exist, per spec.md §4.5: each subsheet's
// port nets are unified with the instantiating component's pin nets by
// pinlabel, then both the composite component and the matched port
// components are dropped from their sheets, grounded on
// original_source/xorn/src/gaf/netlist/pp_hierarchy.py's postproc_instances.
func postprocHierarchyInstances(nl *Netlist) {
	removed := make(map[*Component]bool)

	for _, c := range nl.Components {
		if len(c.Subsheets) == 0 {
			continue
		}

		removed[c] = true
		spliceComposite(nl, c, removed)
	}

	var survivors []*Component

	for _, c := range nl.Components {
		if !removed[c] {
			survivors = append(survivors, c)
		}
	}

	nl.Components = survivors

	reportUnmatchedPorts(nl)
}

func spliceComposite(nl *Netlist, c *Component, removed map[*Component]bool) {
	byLabel := make(map[string][]*CPin)
	claimed := make(map[string]bool)

	for _, cp := range c.CPins {
		label := cp.Blueprint.Pinlabel
		if label == "" {
			c.Sheet.Blueprint.Error("composite component pin has no pinlabel")
			continue
		}

		if claimed[label] {
			c.Sheet.Blueprint.Error("duplicate pinlabel on composite component: " + label)
			continue
		}

		claimed[label] = true
		byLabel[label] = append(byLabel[label], cp)
	}

	for _, subsheet := range c.Subsheets {
		spliceSubsheet(nl, subsheet, byLabel, removed)
	}

	for _, cps := range byLabel {
		for _, cp := range cps {
			removeLocalNetMembership(cp)
		}
	}
}

// spliceSubsheet unifies every port component on subsheet with the
// composite pin carrying the matching pinlabel, per the matching rules of
// spec.md §4.5 (modern portname= ports, or legacy refdes= ports when no
// portname index entry exists), and marks every matched port instance for
// removal from the instance tree.
func spliceSubsheet(nl *Netlist, subsheet *Sheet, byLabel map[string][]*CPin, removed map[*Component]bool) {
	ports := subsheet.Blueprint.Ports

	for label, cps := range byLabel {
		portBlueprints := ports[label]
		if len(portBlueprints) == 0 {
			portBlueprints = legacyPortsByRefdes(subsheet.Blueprint, label)
		}

		if len(portBlueprints) == 0 {
			warn(nl.Reporter, CategoryHierarchy, label,
				"no matching I/O port found in sub-schematic "+subsheet.Blueprint.Filename)

			continue
		}

		if len(portBlueprints) > 1 {
			warn(nl.Reporter, CategoryHierarchy, label,
				"multiple I/O ports match, unioning all of them")
		}

		for _, pbc := range portBlueprints {
			portComponent, ok := subsheet.ComponentsByBlueprint[pbc]
			if !ok || !validPortComponent(nl, portComponent) {
				continue
			}

			removed[portComponent] = true
			portPin := portComponent.CPins[0]

			for _, cp := range cps {
				unionCPins(cp, portPin)
			}

			removeLocalNetMembership(portPin)
		}
	}
}

func legacyPortsByRefdes(blueprint *sch.Schematic, label string) []*sch.Component {
	var out []*sch.Component

	for _, bc := range blueprint.Components {
		if bc.Refdes != nil && *bc.Refdes == label && !bc.HasPortnameAttrib {
			out = append(out, bc)
		}
	}

	return out
}

func validPortComponent(nl *Netlist, c *Component) bool {
	bc := c.Blueprint
	subject := bc.SymbolRef
	if bc.Refdes != nil {
		subject = *bc.Refdes
	}

	if bc.IsGraphical || len(bc.CompositeSources) > 0 || bc.HasNetAttrib() || bc.HasNetnameAttrib {
		fail(nl.Reporter, CategoryHierarchy, subject,
			"I/O port symbol must be non-graphical, non-composite, and carry no net=/netname= attribute")

		return false
	}

	if len(bc.Pins) != 1 {
		fail(nl.Reporter, CategoryHierarchy, subject, "I/O port symbol must expose exactly one pin")

		return false
	}

	return true
}

// unionCPins merges a's and b's global Nets into one, keeping whichever of
// the two Nets was formed first as the survivor (see mergeNets).
func unionCPins(a, b *CPin) {
	if a.LocalNet == nil || b.LocalNet == nil || a.LocalNet.Net == nil || b.LocalNet.Net == nil {
		return
	}

	mergeNets(a.LocalNet.Net, b.LocalNet.Net)
}

// mergeNets folds loser's members into keeper, keeping whichever of the two
// was formed first as keeper (net.go's stability guarantee) and fixing up
// every LocalNet.Net back-reference.
func mergeNets(x, y *Net) *Net {
	if x == y {
		return x
	}

	keeper, loser := x, y
	if loser.order < keeper.order {
		keeper, loser = loser, keeper
	}

	keeper.LocalNets = append(keeper.LocalNets, loser.LocalNets...)
	keeper.ComponentPins = append(keeper.ComponentPins, loser.ComponentPins...)
	keeper.NamesFromNetattrib = append(keeper.NamesFromNetattrib, loser.NamesFromNetattrib...)
	keeper.NamesFromNetname = append(keeper.NamesFromNetname, loser.NamesFromNetname...)
	keeper.IsBus = keeper.IsBus || loser.IsBus

	for _, ln := range loser.LocalNets {
		ln.Net = keeper
	}

	return keeper
}

func removeLocalNetMembership(cp *CPin) {
	ln := cp.LocalNet
	if ln == nil {
		return
	}

	for i, other := range ln.CPins {
		if other == cp {
			ln.CPins = append(ln.CPins[:i], ln.CPins[i+1:]...)
			break
		}
	}

	cp.LocalNet = nil
}

// reportUnmatchedPorts flags I/O port components still carrying
// has_portname_attrib in a final (non-spliced) sheet, per spec.md §4.5's
// "unmatched I/O symbol" diagnostic.
func reportUnmatchedPorts(nl *Netlist) {
	for _, c := range nl.Components {
		if c.Blueprint.HasPortnameAttrib {
			warn(nl.Reporter, CategoryHierarchy, c.Refdes, "unmatched I/O symbol")
		}
	}
}
