package sch

import "github.com/rlutz/gnetgo/pkg/attrib"

// Pin is a single pin exposed by a BlueprintComponent.
type Pin struct {
	Component *Component
	// Number is the pin number as printed on the symbol (e.g. "1", "A3").
	// Renumbered in place by the slotting pass.
	Number string
	// Pinlabel is the pinlabel= attribute, used to match composite
	// component pins to subsheet ports by label.
	Pinlabel string
	// Net is the net segment this pin is electrically connected to on
	// this page, or nil for a pin not tied to any segment.
	Net *NetSegment
	// Attribs carries pin-level attributes such as pinseq= and pintype=.
	Attribs attrib.Dict
	// Virtual marks pins fabricated by the net-attribute pass for
	// numbers that didn't already exist on the component.
	Virtual bool
	// HasNetAttrib marks a pin created or claimed by a net= attribute,
	// consulted by the repackage helper's blueprintRequiresRefdes check.
	HasNetAttrib bool

	diagnostics []Diagnostic
}

// GetAttribute returns the value of a pin-level attribute, or def.
func (p *Pin) GetAttribute(name, def string) string {
	return p.Attribs.Get(name, def)
}

func (p *Pin) diag(sev Severity, msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{sev, p.Number, msg})
}

// Warn records a non-fatal diagnostic against this pin.
func (p *Pin) Warn(msg string) { p.diag(SeverityWarning, msg) }

// Error records a fatal diagnostic against this pin.
func (p *Pin) Error(msg string) { p.diag(SeverityError, msg) }
