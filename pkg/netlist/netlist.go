// Package netlist implements the hierarchical schematic netlist extraction
// pipeline: it consumes already-loaded schematic pages through the parser
// contract in pkg/schread, walks sub-schematic references, unions pins into
// nets, splices hierarchy, groups instances into packages, and mangles
// names — producing the read-only Netlist view pkg/backend consumes.
package netlist

import (
	"path/filepath"
	"strings"

	"github.com/rlutz/gnetgo/pkg/sch"
	"github.com/rlutz/gnetgo/pkg/schread"
	"github.com/rlutz/gnetgo/pkg/slib"
	"github.com/rlutz/gnetgo/pkg/symlib"
)

// Netlist is the root object assembled by Build, owning every schematic,
// sheet, component instance, net, and package produced by extraction, per
// spec.md §3's "Netlist: the root" entity description.
type Netlist struct {
	Config   Config
	Reporter Reporter

	Diagnostics []Diagnostic
	Failed      bool

	Schematics    []*sch.Schematic
	TopSchematics []*sch.Schematic

	Sheets    []*Sheet
	TopSheets []*Sheet

	Components []*Component
	LocalNets  []*LocalNet
	Nets       []*Net
	Packages   []*Package

	PackagesByRefdes map[string]*Package
	NetsByName       map[string]*Net

	schematicsByFile map[string]*sch.Schematic
}

// Build runs the full extraction pipeline over toplevel filenames, per the
// flow spec.md §2 lays out: parse -> blueprint fixups -> instance tree ->
// net union -> hierarchy splice -> graphical cleanup -> packaging -> name
// mangling. The returned error is non-nil only for the fatal, pre-post-
// processing failures of §4.9 (a parser failure or a source= cycle);
// ordinary extraction errors are accumulated as Diagnostics and surfaced
// through Failed instead.
func Build(cfg Config, toplevel []string, symbols *symlib.Library, sources *slib.Library) (*Netlist, error) {
	nl := &Netlist{Config: cfg, schematicsByFile: make(map[string]*sch.Schematic)}
	nl.Reporter = &diagnosticSink{netlist: nl}

	loading := make(map[string]bool)

	for _, filename := range toplevel {
		s, err := loadSchematic(nl, filename, sources, symbols, loading)
		if err != nil {
			return nil, err
		}

		nl.TopSchematics = append(nl.TopSchematics, s)
	}

	postprocPower(nl)
	postprocHierarchyBlueprints(nl)
	postprocSlotting(nl)
	postprocNetattrib(nl)
	postprocGraphicalBlueprints(nl)
	postprocPackageBlueprints(nl)

	for _, s := range nl.TopSchematics {
		nl.traverseSheet(s, nil, nil)
	}

	constructNets(nl)
	postprocHierarchyInstances(nl)
	postprocGraphicalInstances(nl)
	finalizeNets(nl)

	assignRefdes(nl)
	nl.Packages = buildPackages(nl.Components, cfg.FlatPackageNamespace, nl.Reporter)
	pruneUnconnectedNets(nl)

	buildIndexes(nl)
	drainBlueprintDiagnostics(nl)

	return nl, nil
}

// loadSchematic loads filename (and, recursively, every sub-schematic it
// names via source=), memoizing by canonical filename and detecting cycles
// through the presence of a sentinel "currently loading" entry, per spec.md
// §4.1.
func loadSchematic(nl *Netlist, filename string, sources *slib.Library,
	symbols *symlib.Library, loading map[string]bool) (*sch.Schematic, error) {

	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}

	if s, ok := nl.schematicsByFile[filename]; ok {
		return s, nil
	}

	if loading[filename] {
		return nil, &CycleError{Path: filename}
	}

	loading[filename] = true
	defer delete(loading, filename)

	reader, err := schread.Dispatch(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}

	rev, err := reader.Read(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}

	s := sch.FromRevision(filename, rev, symbols)
	nl.schematicsByFile[filename] = s
	nl.Schematics = append(nl.Schematics, s)

	for _, c := range s.Components {
		raw := c.GetAttribute("source", "")
		if raw == "" {
			continue
		}

		for _, entry := range strings.Split(raw, ",") {
			trimmed := strings.TrimLeft(entry, " \t")
			if trimmed != entry {
				c.Warn("leading whitespace in source= entry is deprecated")
			}

			trimmed = strings.TrimSpace(trimmed)

			path, ok := sources.Search(trimmed)
			if !ok {
				c.Error("could not resolve sub-schematic: " + trimmed)
				continue
			}

			sub, err := loadSchematic(nl, path, sources, symbols, loading)
			if err != nil {
				return nil, err
			}

			c.CompositeSources = append(c.CompositeSources, sub)
		}
	}

	return s, nil
}

// traverseSheet performs the depth-first hierarchy walk of spec.md §4.3,
// creating one Sheet per call-site and recursing into composite
// components' resolved sources when TraverseHierarchy is enabled.
func (nl *Netlist) traverseSheet(blueprint *sch.Schematic, namespace Namespace, instantiating *Component) *Sheet {
	s := newSheet(nl, blueprint, namespace, instantiating)
	nl.Sheets = append(nl.Sheets, s)

	if instantiating == nil {
		nl.TopSheets = append(nl.TopSheets, s)
	}

	for _, c := range s.Components {
		nl.Components = append(nl.Components, c)

		if len(c.Blueprint.CompositeSources) == 0 || !nl.Config.TraverseHierarchy {
			continue
		}

		childNS := childNamespace(namespace, instantiatingRefdesBase(c))

		for _, sub := range c.Blueprint.CompositeSources {
			child := nl.traverseSheet(sub, childNS, c)
			c.Subsheets = append(c.Subsheets, child)
		}
	}

	return s
}

func instantiatingRefdesBase(c *Component) string {
	if c.Blueprint.Refdes != nil {
		return *c.Blueprint.Refdes
	}

	return c.Blueprint.SymbolRef
}

// buildIndexes assembles PackagesByRefdes/NetsByName, reporting a
// name-clash error for any duplicate key, per spec.md §3's Netlist
// description and §7's name-clash taxonomy bucket.
func buildIndexes(nl *Netlist) {
	nl.PackagesByRefdes = make(map[string]*Package, len(nl.Packages))

	for _, p := range nl.Packages {
		if _, ok := nl.PackagesByRefdes[p.Refdes]; ok {
			fail(nl.Reporter, CategoryNameClash, p.Refdes, "duplicate refdes across packages")
			continue
		}

		nl.PackagesByRefdes[p.Refdes] = p
	}

	nl.NetsByName = make(map[string]*Net, len(nl.Nets))

	for _, n := range nl.Nets {
		if _, ok := nl.NetsByName[n.Name]; ok {
			fail(nl.Reporter, CategoryNameClash, n.Name, "duplicate net name")
			continue
		}

		nl.NetsByName[n.Name] = n
	}
}

// drainBlueprintDiagnostics forwards every diagnostic recorded directly on
// a blueprint-layer entity (schematic, component, pin, net segment) into
// nl.Reporter, translating sch.Severity to netlist.Severity. It runs once,
// after every pass has had a chance to record a blueprint-layer diagnostic
// (including the hierarchy-splicing pass, which records onto the
// composite's own blueprint schematic).
func drainBlueprintDiagnostics(nl *Netlist) {
	for _, s := range nl.Schematics {
		for _, d := range s.Diagnostics() {
			sev := SeverityWarning
			if d.Severity == sch.SeverityError {
				sev = SeverityError
			}

			nl.Reporter.Report(Diagnostic{
				Severity: sev,
				Category: CategoryBlueprint,
				Subject:  d.Subject,
				Message:  d.Message,
			})
		}
	}
}
