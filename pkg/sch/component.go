package sch

import "github.com/rlutz/gnetgo/pkg/attrib"

// Component is a single placement of a symbol on a schematic page (a
// "BlueprintComponent" in the terminology of the extraction pipeline — the
// instance layer has its own Component type for occurrences of this one).
type Component struct {
	// Schematic is the page this component was placed on.
	Schematic *Schematic
	// SymbolRef identifies the library symbol this component refers to
	// (e.g. "resistor-1.sym").
	SymbolRef string
	// Refdes is the refdes= attribute value, or nil if absent (power and
	// I/O-port symbols, and graphical components, typically have none).
	Refdes *string
	// Attached holds attributes textually attached to this component on
	// the page.
	Attached attrib.Dict
	// Inherited holds attributes promoted from the component's symbol.
	Inherited attrib.Dict
	// Pins is the ordered list of pins this component exposes.
	Pins []*Pin
	// CompositeSources is the list of sub-schematics named by a source=
	// attribute, resolved during loading. Empty for non-composite
	// components and for composites whose sources all failed to
	// resolve.
	CompositeSources []*Schematic
	// Parameters holds param= attributes (inherited search first, then
	// attached), keyed by name; a duplicate name within one scope is
	// rejected, and an attached value overrides an inherited one.
	Parameters map[string]string

	IsGraphical        bool
	HasNetnameAttrib   bool
	HasPortnameAttrib  bool

	// Slot is the slot= attribute value, if present, used by the
	// slotting pass.
	Slot *string

	diagnostics []Diagnostic
}

// GetAttribute searches attached attributes first, then inherited ones,
// returning the first match or def. This is the "attached-then-inherited"
// precedence used everywhere except the explicit param= collection, which
// keeps the two scopes separate.
func (c *Component) GetAttribute(name, def string) string {
	if c.Attached.Has(name) {
		return c.Attached.Get(name, def)
	}

	return c.Inherited.Get(name, def)
}

// GetAttributes returns every value of name from attached attributes
// followed by every value from inherited attributes.
func (c *Component) GetAttributes(name string) []string {
	out := c.Attached.GetAll(name)
	out = append(out, c.Inherited.GetAll(name)...)

	return out
}

// SearchInherited returns every value of name found only in the inherited
// (symbol-promoted) attribute scope.
func (c *Component) SearchInherited(name string) []string {
	return c.Inherited.GetAll(name)
}

// SearchAttached returns every value of name found only in the attached
// (page-level) attribute scope.
func (c *Component) SearchAttached(name string) []string {
	return c.Attached.GetAll(name)
}

// HasNetAttrib reports whether this component carries one or more net=
// attributes, searched across both scopes — used by the mutual-exclusivity
// checks in the blueprint passes.
func (c *Component) HasNetAttrib() bool {
	return len(c.GetAttributes("net")) > 0
}

// FindOrCreatePin returns the pin numbered number, creating a virtual one
// (Virtual=true) if the component doesn't already expose it. Used by the
// net-attribute pass, per spec.md §4.2.4.
func (c *Component) FindOrCreatePin(number string) *Pin {
	for _, p := range c.Pins {
		if p.Number == number {
			return p
		}
	}

	p := &Pin{Component: c, Number: number, Virtual: true}
	c.Pins = append(c.Pins, p)

	return p
}

func (c *Component) diag(sev Severity, msg string) {
	subject := c.SymbolRef
	if c.Refdes != nil {
		subject = *c.Refdes
	}

	c.diagnostics = append(c.diagnostics, Diagnostic{sev, subject, msg})
}

// Warn records a non-fatal diagnostic against this component.
func (c *Component) Warn(msg string) { c.diag(SeverityWarning, msg) }

// Error records a fatal diagnostic against this component.
func (c *Component) Error(msg string) { c.diag(SeverityError, msg) }
