package netlist

// Config bundles every pipeline-wide setting, threaded once into Build
// rather than captured by closures, per spec.md §9's "Mangling callback"
// design note — this is what makes a Build call reproducible and
// serializable for tests.
type Config struct {
	// TraverseHierarchy controls whether composite components are
	// descended into at all (--traverse-hierarchy/--dont-...).
	TraverseHierarchy bool

	// PreferNetnameAttribute: when false (the default), net= attribute
	// names win over netname= ones during canonical name selection.
	PreferNetnameAttribute bool

	FlatPackageNamespace    bool
	FlatNetnameNamespace    bool
	FlatNetattribNamespace  bool

	DefaultNetName string
	DefaultBusName string

	RefdesMangle  MangleFunc
	NetnameMangle MangleFunc

	// IgnoreErrors suppresses the non-zero exit that Errors otherwise
	// cause once extraction completes (§4.9); it never silences the
	// diagnostics themselves.
	IgnoreErrors bool

	Verbose bool
}

// DefaultConfig returns the configuration the CLI falls back to absent any
// flags, matching the defaults documented in spec.md §6.3/§4.
func DefaultConfig() Config {
	return Config{
		TraverseHierarchy:      true,
		PreferNetnameAttribute: false,
		DefaultNetName:         "unnamed_net",
		DefaultBusName:         "unnamed_bus",
		RefdesMangle: BuildMangleFunc(MangleOptions{
			ChainSeparator: "/", ChainOrder: OrderAppend,
			AttachSeparator: "/", AttachOrder: OrderAppend,
		}),
		NetnameMangle: BuildMangleFunc(MangleOptions{
			ChainSeparator: "/", ChainOrder: OrderAppend,
			AttachSeparator: "/", AttachOrder: OrderAppend,
		}),
	}
}
