package netlist

// finalizeNets recomputes each Net's flattened ComponentPins and
// IsUnconnectedPin flag from nl.LocalNets after hierarchy splicing and
// graphical stripping have changed membership. It walks nl.LocalNets
// rather than nl.Nets directly because mergeNets (pp_hierarchy_instance.go)
// updates each LocalNet.Net in place but leaves the losing Net object
// itself in whatever slice already referenced it; rebuilding nl.Nets from
// scratch here also collapses those stale duplicates away.
//
// Pruning unconnected-pin nets happens later, in pruneUnconnectedNets,
// once packaging has populated net.Connections — a net reduced to a
// single real pin by splicing can still straddle more than one subsheet
// I/O boundary, and that can only be seen after packaging groups
// instances and counts package-level connections (spec.md §4.4/§8
// invariant 3), per netlist.py's un-flagging any net whose
// len(net.connections) > 1 before pruning.
func finalizeNets(nl *Netlist) {
	seen := make(map[*Net]bool)
	var order []*Net

	for _, ln := range nl.LocalNets {
		net := ln.Net
		if !seen[net] {
			seen[net] = true
			net.ComponentPins = nil
			order = append(order, net)
		}
	}

	for _, ln := range nl.LocalNets {
		ln.Net.ComponentPins = append(ln.Net.ComponentPins, ln.CPins...)
	}

	for _, net := range order {
		net.IsUnconnectedPin = len(net.ComponentPins) <= 1 &&
			len(net.NamesFromNetattrib) == 0 && len(net.NamesFromNetname) == 0
	}

	nl.Nets = order
}

// pruneUnconnectedNets drops nets still flagged IsUnconnectedPin from
// nl.Nets, after first un-flagging any net whose packaged Connections
// span more than one pin — the straddle exception spec.md §4.4/§8
// invariant 3 requires, grounded on netlist.py's post-packaging
// re-check. Must run after buildPackages has populated net.Connections.
func pruneUnconnectedNets(nl *Netlist) {
	var kept []*Net

	for _, net := range nl.Nets {
		if net.IsUnconnectedPin && len(net.Connections) > 1 {
			net.IsUnconnectedPin = false
		}

		if !net.IsUnconnectedPin {
			kept = append(kept, net)
		}
	}

	nl.Nets = kept
}
