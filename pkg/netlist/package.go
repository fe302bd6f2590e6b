package netlist

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Package groups every surviving Component instance sharing a mangled
// refdes within a namespace, per spec.md §4.6, grounded on
// original_source/src/gaf/netlist/netlist.py's packaging block.
type Package struct {
	Refdes     string
	Namespace  Namespace
	Components []*Component
	Pins       []*PackagePin
	pinsByNum  map[string]*PackagePin
}

// PackagePin aggregates every CPin sharing a pin number across every
// Component slot in a Package.
type PackagePin struct {
	Package *Package
	Number  string
	CPins   []*CPin
	Net     *Net
}

// GetAttribute searches every slot's blueprint pin attributes (pinlabel=,
// pinseq=, ...), returning the first match in slot order.
func (pp *PackagePin) GetAttribute(name, def string) string {
	for _, cp := range pp.CPins {
		if v := cp.Blueprint.GetAttribute(name, ""); v != "" {
			return v
		}
	}

	return def
}

// GetAttribute searches every member Component's blueprint attributes,
// returning the first match in instance order.
func (p *Package) GetAttribute(name, def string) string {
	for _, c := range p.Components {
		if v := c.Blueprint.GetAttribute(name, ""); v != "" {
			return v
		}
	}

	return def
}

// buildPackages groups nl.Components by (namespace, refdes) per spec.md
// §4.6. flatNamespace collapses the namespace component of the key to the
// empty string, matching flat_package_namespace=true.
func buildPackages(components []*Component, flatNamespace bool, reporter Reporter) []*Package {
	return groupComponents(components, reporter, func(c *Component) (string, bool) {
		if c.Refdes == "" {
			return "", false
		}

		ns := namespaceKey(c.Sheet.Namespace)
		if flatNamespace {
			ns = ""
		}

		return ns + "\x00" + c.Refdes, true
	}, func(c *Component) string { return c.Refdes })
}

// groupComponents is the shared grouping engine behind buildPackages and
// Repackage: components are bucketed by keyFunc's result (in first-
// encountered order), each bucket becomes a Package labelled by
// refdesFunc, and every bucket is validated and pin-aggregated the same
// way regardless of which caller is grouping.
func groupComponents(components []*Component, reporter Reporter,
	keyFunc func(*Component) (string, bool), refdesFunc func(*Component) string) []*Package {

	byKey := make(map[string]*Package)
	var order []*Package

	for _, c := range components {
		key, ok := keyFunc(c)
		if !ok {
			continue
		}

		pkg, ok := byKey[key]
		if !ok {
			pkg = &Package{
				Refdes:    refdesFunc(c),
				Namespace: c.Sheet.Namespace,
				pinsByNum: make(map[string]*PackagePin),
			}
			byKey[key] = pkg
			order = append(order, pkg)
		}

		pkg.Components = append(pkg.Components, c)
	}

	for _, pkg := range order {
		checkSlotDuplicates(pkg, reporter)
		aggregatePins(pkg, reporter)
	}

	return order
}

// checkSlotDuplicates flags two component instances in the same package
// claiming the same slot= number, using a bitset initially sized to the
// package's component count that grows as higher slot numbers are set,
// per spec.md §4.2.3/§8 scenario 4.
func checkSlotDuplicates(pkg *Package, reporter Reporter) {
	if len(pkg.Components) < 2 {
		return
	}

	seen := bitset.New(uint(len(pkg.Components)) + 1)

	for _, c := range pkg.Components {
		if c.Blueprint.Slot == nil {
			continue
		}

		var n int
		if _, err := fmt.Sscanf(*c.Blueprint.Slot, "%d", &n); err != nil || n < 0 {
			continue
		}

		idx := uint(n)
		if seen.Test(idx) {
			fail(reporter, CategoryBlueprint, pkg.Refdes,
				fmt.Sprintf("slot %d used by more than one component in package", n))

			continue
		}

		seen.Set(idx)
	}
}

func aggregatePins(pkg *Package, reporter Reporter) {
	for _, c := range pkg.Components {
		for _, cp := range c.CPins {
			num := cp.Blueprint.Number

			pp, ok := pkg.pinsByNum[num]
			if !ok {
				pp = &PackagePin{Package: pkg, Number: num}
				pkg.pinsByNum[num] = pp
				pkg.Pins = append(pkg.Pins, pp)
			}

			pp.CPins = append(pp.CPins, cp)

			var net *Net
			if cp.LocalNet != nil {
				net = cp.LocalNet.Net
			}

			if pp.Net == nil {
				pp.Net = net
				if net != nil {
					net.Connections = append(net.Connections, pp)
				}
			} else if net != nil && net != pp.Net {
				fail(reporter, CategoryBlueprint, pkg.Refdes+"."+num,
					"multiple nets connected to pin after re-packaging")
			}
		}
	}
}
