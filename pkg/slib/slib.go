// Package slib implements the source library: resolution of a bare
// sub-schematic filename (as named in a component's source= attribute) to a
// fully-qualified path. A Library is built with New and passed explicitly
// through the pipeline rather than kept as a package-level list, per the
// "Global mutables" design note; it caches nothing, and every Search stats
// the candidate paths afresh.
package slib

import (
	"os"
	"path/filepath"
)

// Library is an ordered list of search directories used to resolve bare
// schematic filenames named by source= attributes.
type Library struct {
	dirs []string
}

// New constructs a Library that searches dirs in order.
func New(dirs ...string) *Library {
	return &Library{dirs: append([]string(nil), dirs...)}
}

// AddDir appends a directory to the end of the search path.
func (l *Library) AddDir(dir string) {
	l.dirs = append(l.dirs, dir)
}

// Search resolves name to a fully-qualified path by checking every search
// directory in order. Returns "", false if name isn't found anywhere,
// matching s_slib_search_single's None return.
func (l *Library) Search(name string) (string, bool) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name, true
		}

		return "", false
	}

	for _, dir := range l.dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}
