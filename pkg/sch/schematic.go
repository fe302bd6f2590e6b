// Package sch implements the blueprint layer: the immutable, per-file model
// of a schematic page, independent of how many times it is instantiated in
// the design hierarchy. Blueprints are produced once at load time and
// mutated only by the fixed sequence of blueprint post-processing passes in
// package netlist; after that they are read-only.
package sch

import "github.com/rlutz/gnetgo/pkg/attrib"

// Schematic is one loaded schematic page (a "blueprint"). Its identity is
// its canonical filename.
type Schematic struct {
	// Filename is the canonical path this schematic was loaded from.
	Filename string
	// Components is the ordered list of components placed on this page.
	Components []*Component
	// Nets is the ordered list of net segments on this page.
	Nets []*NetSegment
	// FloatingAttribs holds text objects not attached to any entity.
	FloatingAttribs attrib.Dict
	// Ports maps portname= to the I/O-port components declaring it,
	// filled by the hierarchy (blueprint) pass.
	Ports map[string][]*Component

	diagnostics []Diagnostic
}

// Diagnostic is a single warning or error localized to a schematic-layer
// entity, recorded by Warn/Error below and drained by the driver once
// extraction completes.
type Diagnostic struct {
	Severity Severity
	Subject  string
	Message  string
}

// Severity distinguishes warnings from errors.
type Severity int

// Severity levels, lowest to highest.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s *Schematic) diag(sev Severity, subject, msg string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{sev, subject, msg})
}

// Warn records a non-fatal diagnostic against the schematic itself.
func (s *Schematic) Warn(msg string) { s.diag(SeverityWarning, s.Filename, msg) }

// Error records a fatal diagnostic against the schematic itself.
func (s *Schematic) Error(msg string) { s.diag(SeverityError, s.Filename, msg) }

// Diagnostics returns every diagnostic recorded on this schematic or its
// components/pins/net segments during loading and blueprint passes.
func (s *Schematic) Diagnostics() []Diagnostic {
	all := append([]Diagnostic(nil), s.diagnostics...)

	for _, c := range s.Components {
		all = append(all, c.diagnostics...)

		for _, p := range c.Pins {
			all = append(all, p.diagnostics...)
		}
	}

	for _, n := range s.Nets {
		all = append(all, n.diagnostics...)
	}

	return all
}

// NewNetSegment creates and registers a fresh NetSegment on this schematic,
// used by the net-attribute pass to fabricate a segment for each net=
// attribute it consumes.
func (s *Schematic) NewNetSegment() *NetSegment {
	seg := &NetSegment{Schematic: s}
	s.Nets = append(s.Nets, seg)

	return seg
}

// Failed reports whether any SeverityError diagnostic was recorded anywhere
// on this schematic.
func (s *Schematic) Failed() bool {
	for _, d := range s.Diagnostics() {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}
