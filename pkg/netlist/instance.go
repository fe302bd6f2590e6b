package netlist

import "github.com/rlutz/gnetgo/pkg/sch"

// Sheet is one call-site occurrence of a schematic blueprint: one per
// top-level file, plus one per composite-component expansion. Its identity
// is the pair (Blueprint, InstantiatingComponent).
type Sheet struct {
	Netlist   *Netlist
	Blueprint *sch.Schematic
	// Namespace is this sheet's fully-qualified instantiation chain.
	Namespace Namespace
	// InstantiatingComponent is the composite component instance whose
	// expansion produced this sheet, or nil for a toplevel sheet.
	InstantiatingComponent *Component

	Components            []*Component
	ComponentsByBlueprint map[*sch.Component]*Component
}

// Component is a single occurrence of a BlueprintComponent on a Sheet.
type Component struct {
	Sheet     *Sheet
	Blueprint *sch.Component

	CPins            []*CPin
	CPinsByNumber    map[string]*CPin
	CPinsByBlueprint map[*sch.Pin]*CPin

	// Subsheets holds one child Sheet per resolved composite_sources
	// entry, populated for composite components only.
	Subsheets []*Sheet

	// Refdes is the mangled reference designator, assigned after net
	// construction and hierarchy splicing.
	Refdes string

	IsGraphical bool
}

// CPin is a single pin of a Component instance.
type CPin struct {
	Component *Component
	Blueprint *sch.Pin
	LocalNet  *LocalNet
}

// newSheet creates a Sheet and one Component per component on blueprint,
// without recursing into composites — recursion is driven by the caller
// (Netlist.traverseSheet) so it can track the evolving namespace.
func newSheet(nl *Netlist, blueprint *sch.Schematic, namespace Namespace, instantiating *Component) *Sheet {
	s := &Sheet{
		Netlist:               nl,
		Blueprint:             blueprint,
		Namespace:             namespace,
		InstantiatingComponent: instantiating,
		ComponentsByBlueprint: make(map[*sch.Component]*Component),
	}

	for _, bc := range blueprint.Components {
		c := &Component{
			Sheet:            s,
			Blueprint:        bc,
			IsGraphical:      bc.IsGraphical,
			CPinsByNumber:    make(map[string]*CPin),
			CPinsByBlueprint: make(map[*sch.Pin]*CPin),
		}

		for _, bp := range bc.Pins {
			cp := &CPin{Component: c, Blueprint: bp}
			c.CPins = append(c.CPins, cp)
			c.CPinsByNumber[bp.Number] = cp
			c.CPinsByBlueprint[bp] = cp
		}

		s.Components = append(s.Components, c)
		s.ComponentsByBlueprint[bc] = c
	}

	return s
}

// childNamespace extends parent with instantiatingRefdes, the instantiating
// component's bare (unmangled) blueprint refdes, per spec.md §4.3.
func childNamespace(parent Namespace, instantiatingRefdes string) Namespace {
	ns := make(Namespace, 0, len(parent)+1)
	ns = append(ns, parent...)
	ns = append(ns, instantiatingRefdes)

	return ns
}
