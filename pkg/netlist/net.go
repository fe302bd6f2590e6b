package netlist

import (
	"fmt"

	"github.com/rlutz/gnetgo/pkg/sch"
)

// LocalNet is a per-Sheet equivalence class of CPins, grounded on spec.md
// §3/§4.4's local-net formation step: within one sheet, every CPin whose
// blueprint pin shares a sch.NetSegment joins the same LocalNet. A CPin
// whose blueprint pin has no NetSegment (an isolated, unconnected pin)
// becomes its own singleton LocalNet with a nil Segment.
type LocalNet struct {
	Sheet   *Sheet
	Segment *sch.NetSegment
	CPins   []*CPin
	Net     *Net

	// order is this LocalNet's position in overall construction order,
	// used to pick a stable union-find representative (§4.4: "merging is
	// stable: the representative carries the lowest-indexed encounter's
	// attributes") and to order candidate names in document order.
	order int
}

// Net is a global equivalence class spanning the whole design, formed by
// unioning LocalNets across sheets per spec.md §4.4's global-union step.
type Net struct {
	LocalNets     []*LocalNet
	ComponentPins []*CPin

	// NamesFromNetattrib and NamesFromNetname mirror the two candidate-name
	// sources kept separate throughout the pipeline (sch.NetSegment's split
	// fields), collected here in document order so canonical name
	// selection can apply the net-attribute-wins-by-default policy from
	// spec.md §4.4.
	NamesFromNetattrib []string
	NamesFromNetname   []string

	// Namespace is the namespace of the lowest-indexed LocalNet folded into
	// this Net, used both to key the per-namespace unnamed_N/unnamed_bus_N
	// counters and to report namespace-scoped name clashes.
	Namespace Namespace

	IsUnconnectedPin bool
	IsBus            bool

	// Name is the canonical name, assigned by assignNetNames once every Net
	// has been formed.
	Name string

	// Connections is the backend-visible view of this net's endpoints,
	// populated by buildPackages once instances are grouped into packages:
	// spec.md §6.2's net.connections -> [PackagePin].
	Connections []*PackagePin

	order int
}

// constructNets runs both stages of spec.md §4.4 over the already-built
// instance tree, populating nl.LocalNets and nl.Nets and assigning every
// Net's canonical Name.
func constructNets(nl *Netlist) {
	locals := buildLocalNets(nl)
	nets := buildNets(nl, locals)

	nl.LocalNets = locals
	nl.Nets = nets

	assignNetNames(nl)
}

// buildLocalNets groups every Sheet's CPins into LocalNets by shared
// blueprint NetSegment, per spec.md §4.4's local-net formation step. A nil
// segment (an unconnected blueprint pin) yields one singleton LocalNet per
// CPin, since distinct unconnected pins are never electrically related.
func buildLocalNets(nl *Netlist) []*LocalNet {
	var locals []*LocalNet

	for _, sheet := range nl.Sheets {
		bySegment := make(map[*sch.NetSegment]*LocalNet)

		for _, c := range sheet.Components {
			for _, cp := range c.CPins {
				seg := cp.Blueprint.Net

				if seg == nil {
					ln := &LocalNet{Sheet: sheet, CPins: []*CPin{cp}}
					locals = append(locals, ln)
					cp.LocalNet = ln

					continue
				}

				ln, ok := bySegment[seg]
				if !ok {
					ln = &LocalNet{Sheet: sheet, Segment: seg}
					bySegment[seg] = ln
					locals = append(locals, ln)
				}

				ln.CPins = append(ln.CPins, cp)
				cp.LocalNet = ln
			}
		}
	}

	for i, ln := range locals {
		ln.order = i
	}

	return locals
}

// netUnionFind implements union-find over LocalNets with union-by-lowest-
// order, so the surviving representative is always the earliest-
// encountered LocalNet — the stability guarantee spec.md §4.4 calls for.
type netUnionFind struct {
	parent map[*LocalNet]*LocalNet
}

func newNetUnionFind(locals []*LocalNet) *netUnionFind {
	u := &netUnionFind{parent: make(map[*LocalNet]*LocalNet, len(locals))}
	for _, ln := range locals {
		u.parent[ln] = ln
	}

	return u
}

func (u *netUnionFind) find(ln *LocalNet) *LocalNet {
	root := ln
	for u.parent[root] != root {
		root = u.parent[root]
	}

	for u.parent[ln] != root {
		next := u.parent[ln]
		u.parent[ln] = root
		ln = next
	}

	return root
}

func (u *netUnionFind) union(a, b *LocalNet) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}

	if rb.order < ra.order {
		ra, rb = rb, ra
	}

	u.parent[rb] = ra
}

// buildNets runs the full global-union stage of spec.md §4.4: every
// LocalNet starts in its own class, candidate-name intersections fold
// classes together subject to the flat-namespace policy, and the surviving
// classes become Nets with their canonical name left for assignNetNames.
func buildNets(nl *Netlist, locals []*LocalNet) []*Net {
	uf := newNetUnionFind(locals)

	netattribGroups := make(map[string][]*LocalNet)
	netnameGroups := make(map[string][]*LocalNet)

	for _, ln := range locals {
		if ln.Segment == nil {
			continue
		}

		for _, name := range ln.Segment.NamesFromNetattrib {
			key := name
			if !nl.Config.FlatNetattribNamespace {
				key = namespaceKey(ln.Sheet.Namespace) + "\x00" + name
			}

			netattribGroups[key] = append(netattribGroups[key], ln)
		}

		for _, name := range ln.Segment.NamesFromNetname {
			key := name
			if !nl.Config.FlatNetnameNamespace {
				key = namespaceKey(ln.Sheet.Namespace) + "\x00" + name
			}

			netnameGroups[key] = append(netnameGroups[key], ln)
		}
	}

	for _, group := range netattribGroups {
		for i := 1; i < len(group); i++ {
			uf.union(group[0], group[i])
		}
	}

	for _, group := range netnameGroups {
		for i := 1; i < len(group); i++ {
			uf.union(group[0], group[i])
		}
	}

	return collectNets(uf, locals)
}

func namespaceKey(ns Namespace) string {
	key := ""
	for _, tag := range ns {
		key += tag + "/"
	}

	return key
}

// collectNets materializes one Net per surviving union-find class, in the
// order its representative (lowest-order member) was first encountered.
func collectNets(uf *netUnionFind, locals []*LocalNet) []*Net {
	byRoot := make(map[*LocalNet]*Net)
	var nets []*Net

	for _, ln := range locals {
		root := uf.find(ln)

		net, ok := byRoot[root]
		if !ok {
			net = &Net{Namespace: root.Sheet.Namespace, order: len(nets)}
			byRoot[root] = net
			nets = append(nets, net)
		}

		ln.Net = net
		net.LocalNets = append(net.LocalNets, ln)

		for _, cp := range ln.CPins {
			net.ComponentPins = append(net.ComponentPins, cp)
		}

		if ln.Segment != nil {
			net.NamesFromNetattrib = append(net.NamesFromNetattrib, ln.Segment.NamesFromNetattrib...)
			net.NamesFromNetname = append(net.NamesFromNetname, ln.Segment.NamesFromNetname...)

			if hasBusPin(ln) {
				net.IsBus = true
			}
		}
	}

	for _, net := range nets {
		net.IsUnconnectedPin = len(net.ComponentPins) <= 1 &&
			len(net.NamesFromNetattrib) == 0 && len(net.NamesFromNetname) == 0
	}

	return nets
}

// hasBusPin reports whether any pin folded into ln carries pintype=bus,
// the signal used to pick the unnamed_bus_N naming template instead of
// unnamed_net_N (original_source/xorn/src/command/netlist.py documents
// default_bus_name but the bus-detection predicate itself lives in the
// proprietary xorn.storage extension that original_source/ doesn't carry;
// pintype=bus is the one bus marker surfaced anywhere in the retrieved
// corpus, so canonical-name selection uses it as the bus predicate).
func hasBusPin(ln *LocalNet) bool {
	for _, cp := range ln.CPins {
		if cp.Blueprint.GetAttribute("pintype", "") == "bus" {
			return true
		}
	}

	return false
}

// assignNetNames performs spec.md §4.4's canonical name selection for
// every Net in nl.Nets, reporting ambiguous-name warnings through
// nl.Reporter and fabricating unnamed_N/unnamed_bus_N names per namespace
// where no candidate exists.
func assignNetNames(nl *Netlist) {
	counters := make(map[string]int)

	for _, net := range nl.Nets {
		winning, losing := net.NamesFromNetattrib, net.NamesFromNetname
		if nl.Config.PreferNetnameAttribute {
			winning, losing = net.NamesFromNetname, net.NamesFromNetattrib
		}

		switch {
		case len(winning) > 0:
			net.Name = winning[0]
			reportExtraNames(nl, net, append(append([]string{}, winning[1:]...), losing...))

		case len(losing) > 0:
			net.Name = losing[0]
			reportExtraNames(nl, net, losing[1:])

		default:
			template := nl.Config.DefaultNetName
			if net.IsBus {
				template = nl.Config.DefaultBusName
			}

			key := namespaceKey(net.Namespace) + "\x00" + template
			counters[key]++
			net.Name = fmt.Sprintf("%s_%d", template, counters[key])
		}

		net.Name = nl.Config.NetnameMangle(net.Name, net.Namespace)
	}
}

func reportExtraNames(nl *Netlist, net *Net, extra []string) {
	for _, name := range extra {
		if name == net.Name {
			continue
		}

		warn(nl.Reporter, CategoryNameClash, net.Name,
			fmt.Sprintf("net also matches candidate name %q, using %q", name, net.Name))
	}
}
