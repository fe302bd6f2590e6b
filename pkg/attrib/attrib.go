// Package attrib implements the attribute model shared by every layer of the
// netlist extractor: floating and attached text objects of the form
// "name=value", and the two independent search scopes ("inherited" via a
// symbol's promoted attributes, and "attached" directly to an object)
// schematic components expose them through.
package attrib

import "strings"

// Pair is a single name/value attribute in document order. Document order
// matters: duplicate names are significant (net= lists, sab-param
// multi-context declarations) and must not be collapsed into a map.
type Pair struct {
	Name  string
	Value string
}

// Dict is an ordered, possibly-duplicate-keyed multimap of attributes
// attached to or inherited by a single object.
type Dict struct {
	pairs []Pair
}

// NewDict builds a Dict from a sequence of raw "name=value" strings,
// recording a MalformedAttributeError for each entry that fails to parse
// rather than aborting the whole dictionary.
func NewDict(raw []string) (Dict, []error) {
	var (
		d    Dict
		errs []error
	)

	for _, s := range raw {
		p, err := Parse(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		d.pairs = append(d.pairs, p)
	}

	return d, errs
}

// Add appends a single already-parsed pair, preserving document order.
func (d *Dict) Add(name, value string) {
	d.pairs = append(d.pairs, Pair{name, value})
}

// Get returns the value of the first attribute named name, or def if none
// exists. Mirrors gaf.attrib's get_attribute(name, default).
func (d Dict) Get(name, def string) string {
	for _, p := range d.pairs {
		if p.Name == name {
			return p.Value
		}
	}

	return def
}

// Has reports whether any attribute named name is present.
func (d Dict) Has(name string) bool {
	for _, p := range d.pairs {
		if p.Name == name {
			return true
		}
	}

	return false
}

// GetAll returns the values of every attribute named name, in document
// order. Mirrors gaf.attrib's get_attributes(name).
func (d Dict) GetAll(name string) []string {
	var out []string

	for _, p := range d.pairs {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}

	return out
}

// All returns every pair in document order.
func (d Dict) All() []Pair {
	return d.pairs
}

// Parse splits a raw "name=value" string into a Pair. The name is
// everything up to the first '=', the value everything after it; a missing
// '=' is malformed.
func Parse(raw string) (Pair, error) {
	idx := strings.IndexByte(raw, '=')
	if idx < 0 {
		return Pair{}, &MalformedAttributeError{Raw: raw}
	}

	return Pair{Name: raw[:idx], Value: raw[idx+1:]}, nil
}
