package netlist

import "strings"

// Namespace is the chain of instantiating components' blueprint refdeses,
// outermost first, that identifies a particular call-site in the design
// hierarchy. A nil Namespace means "top level" (spec.md's namespace=None).
type Namespace []string

// Order selects whether a namespace tag is prepended or appended to a base
// name during mangling.
type Order int

// Mangling orders.
const (
	OrderAppend Order = iota
	OrderPrepend
)

// MangleOptions configures a pure name-mangling function, per spec.md §4.7
// and §4.3, grounded on netlist.py's mangle(name, namespace, separator0,
// order0, separator1, order1): the hierarchy chain is always joined (and,
// per ChainOrder, reversed) using the refdes separator/order, regardless of
// what's being mangled; only the final attachment of the chain to basename
// uses the mangled thing's own separator/order. For refdes mangling itself
// Chain* and Attach* are the same refdes separator/order; for net-name
// mangling, Chain* carries the refdes separator/order and Attach* carries
// the netname separator/order — encoded as a value and built once, not
// captured by closures, so the extractor stays reproducible (§9).
type MangleOptions struct {
	ChainSeparator  string
	ChainOrder      Order
	AttachSeparator string
	AttachOrder     Order
}

// MangleFunc combines a base name and a namespace into a fully-qualified
// name.
type MangleFunc func(basename string, namespace Namespace) string

// BuildMangleFunc constructs a MangleFunc from options, per spec.md §4.7
// and scenario 2 (namespace ["U1"], separator "/", append order yields
// "U1/R1"): with no namespace, the output is the basename unchanged;
// with a namespace, the chain is reversed when ChainOrder is
// OrderPrepend (netlist.py's hierarchy_tag.reverse() under
// order0 == PREPEND), then joined with ChainSeparator — AttachOrder then
// places basename and the joined tag in order, append putting the tag
// first ("U1/R1"), prepend putting basename first ("R1/U1").
func BuildMangleFunc(opts MangleOptions) MangleFunc {
	return func(basename string, namespace Namespace) string {
		if len(namespace) == 0 {
			return basename
		}

		chain := namespace
		if opts.ChainOrder == OrderPrepend {
			chain = reverseNamespace(chain)
		}

		tag := strings.Join(chain, opts.ChainSeparator)

		if opts.AttachOrder == OrderPrepend {
			return basename + opts.AttachSeparator + tag
		}

		return tag + opts.AttachSeparator + basename
	}
}

// reverseNamespace returns namespace's elements in reverse order, leaving
// namespace itself untouched.
func reverseNamespace(namespace Namespace) Namespace {
	out := make(Namespace, len(namespace))

	for i, tag := range namespace {
		out[len(namespace)-1-i] = tag
	}

	return out
}

// IdentityMangleFunc ignores the namespace entirely, used when hierarchy
// mangling is disabled on the command line (spec.md scenario 3): refdes or
// net-name collisions across sheets are then left for NameClashError to
// catch rather than being avoided by tagging.
func IdentityMangleFunc(basename string, _ Namespace) string {
	return basename
}
