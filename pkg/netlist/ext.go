package netlist

import "strings"

// execComponent dispatches an exec action to a registered extension, per
// spec.md §4.8's sab_process(netlist, context, component, params) contract,
// grounded on xorn/src/gaf/sab_utils.py's exec_extern. params' text up to
// the first ':' names the extension; the remainder is passed through
// unparsed.
func execComponent(nl *Netlist, context string, e *sabEntry, registry ExtensionRegistry) {
	name := e.params
	rest := ""

	if i := strings.IndexByte(e.params, ':'); i >= 0 {
		name = e.params[:i]
		rest = e.params[i+1:]
	}

	fn, ok := registry[name]
	if !ok {
		warn(nl.Reporter, CategorySAB, e.refdes, "no sab extension registered as "+name)
		return
	}

	fn(nl, context, e.component, rest)
}

// bypassComponent shorts together groups of c's pins ahead of discarding c,
// per spec.md §4.8, grounded on xorn/src/gaf/sab_utils.py's bypass. shorts
// is c's sab-param params string: semicolon-separated groups, each a
// comma-separated pin-number list optionally followed by "as NewName" to
// rename the surviving net.
func bypassComponent(nl *Netlist, c *Component, shorts string) {
	for _, group := range strings.Split(shorts, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		pinList := group
		newName := ""
		hasName := false

		if i := strings.Index(group, "as"); i >= 0 {
			pinList = group[:i]
			newName = strings.TrimSpace(group[i+2:])
			hasName = true
		}

		pinList = strings.TrimSpace(pinList)
		if !isPinList(pinList) {
			warn(nl.Reporter, CategorySAB, c.Refdes, "malformed bypass pin list: "+group)
			continue
		}

		pins := strings.Split(pinList, ",")
		if len(pins) < 2 {
			warn(nl.Reporter, CategorySAB, c.Refdes, "bypass group needs at least two pins: "+group)
			continue
		}

		destCP, ok := c.CPinsByNumber[pins[0]]
		if !ok || destCP.LocalNet == nil {
			warn(nl.Reporter, CategorySAB, c.Refdes, "no such pin "+pins[0]+" to bypass")
			continue
		}

		destNet := destCP.LocalNet.Net

		if hasName && newName != "" {
			destNet.Name = newName
		}

		var srcNets []*Net

		for _, num := range pins[1:] {
			cp, ok := c.CPinsByNumber[num]
			if !ok || cp.LocalNet == nil {
				warn(nl.Reporter, CategorySAB, c.Refdes, "no such pin "+num+" to bypass")
				continue
			}

			n := cp.LocalNet.Net
			if n == destNet || n.IsUnconnectedPin || containsNet(srcNets, n) {
				continue
			}

			srcNets = append(srcNets, n)
		}

		for _, n := range srcNets {
			mergeNetInto(destNet, n)
			removeNetFromSlice(&nl.Nets, n)
			delete(nl.NetsByName, n.Name)
		}
	}
}

func containsNet(nets []*Net, n *Net) bool {
	for _, x := range nets {
		if x == n {
			return true
		}
	}

	return false
}

func isPinList(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' {
			return false
		}
	}

	return true
}

// mergeNetInto folds src's members into dest, always keeping dest as the
// surviving identity regardless of formation order — distinct from
// mergeNets (pp_hierarchy_instance.go), which preserves whichever net
// formed first. bypass's shorting groups name their destination net
// explicitly (the group's first pin), so the caller's choice of survivor
// must be honored outright, per sab_utils.py's Net.merge_into.
func mergeNetInto(dest, src *Net) {
	if dest == src {
		return
	}

	dest.LocalNets = append(dest.LocalNets, src.LocalNets...)
	dest.ComponentPins = append(dest.ComponentPins, src.ComponentPins...)
	dest.NamesFromNetattrib = append(dest.NamesFromNetattrib, src.NamesFromNetattrib...)
	dest.NamesFromNetname = append(dest.NamesFromNetname, src.NamesFromNetname...)
	dest.IsBus = dest.IsBus || src.IsBus

	for _, ln := range src.LocalNets {
		ln.Net = dest
	}
}

// discardComponent removes c from the netlist entirely, per spec.md §4.8,
// grounded on xorn/src/gaf/sab_utils.py's discard: every pin is first
// detached from its net, emptied nets are pruned, and c is then dropped
// from its sheet, package and the netlist's component list. Unlike
// discard()'s Python original, the underlying schematic blueprint object is
// left untouched — its component count no longer matters once every
// instance-level reference to c above has been removed, and the blueprint
// may still be shared by sibling instances of the same sub-schematic.
func discardComponent(nl *Netlist, c *Component) {
	for _, cp := range c.CPins {
		detachPin(nl, cp)
	}

	removeComponentFromSlice(&c.Sheet.Components, c)
	delete(c.Sheet.ComponentsByBlueprint, c.Blueprint)
	removeComponentFromSlice(&nl.Components, c)
	removeComponentFromPackage(nl, c)
}

// detachPin removes cp from its LocalNet and Net, pruning either object
// once it has no members left and re-deriving IsUnconnectedPin for the
// remaining net.
func detachPin(nl *Netlist, cp *CPin) {
	ln := cp.LocalNet
	if ln == nil {
		return
	}

	removeLocalNetMembership(cp)

	net := ln.Net
	if net == nil {
		return
	}

	removeCPinFromSlice(&net.ComponentPins, cp)

	if len(ln.CPins) == 0 {
		removeLocalNetFromSlice(&net.LocalNets, ln)
	}

	if len(net.LocalNets) == 0 && len(net.ComponentPins) == 0 {
		removeNetFromSlice(&nl.Nets, net)
		delete(nl.NetsByName, net.Name)

		return
	}

	net.IsUnconnectedPin = len(net.ComponentPins) <= 1 &&
		len(net.NamesFromNetattrib) == 0 && len(net.NamesFromNetname) == 0
}

func removeComponentFromPackage(nl *Netlist, c *Component) {
	pkg, ok := nl.PackagesByRefdes[c.Refdes]
	if !ok {
		return
	}

	for i, member := range pkg.Components {
		if member == c {
			pkg.Components = append(pkg.Components[:i], pkg.Components[i+1:]...)
			break
		}
	}

	if len(pkg.Components) == 0 {
		delete(nl.PackagesByRefdes, c.Refdes)

		for i, p := range nl.Packages {
			if p == pkg {
				nl.Packages = append(nl.Packages[:i], nl.Packages[i+1:]...)
				break
			}
		}
	}
}

func removeComponentFromSlice(s *[]*Component, c *Component) {
	for i, x := range *s {
		if x == c {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

func removeCPinFromSlice(s *[]*CPin, cp *CPin) {
	for i, x := range *s {
		if x == cp {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

func removeLocalNetFromSlice(s *[]*LocalNet, ln *LocalNet) {
	for i, x := range *s {
		if x == ln {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

func removeNetFromSlice(s *[]*Net, n *Net) {
	for i, x := range *s {
		if x == n {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}
