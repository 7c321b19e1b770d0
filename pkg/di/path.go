package di

import (
	"strings"
)

// Path is a hierarchical scope marker indicating where a definition was
// declared. The core consumes only the two predicates; alternative hierarchy
// models plug in through this interface.
type Path interface {
	// Equal reports whether two paths denote the same location.
	Equal(other Path) bool

	// IsVisible reports whether a definition declared at this path is usable
	// by code requesting resolution from the given path.
	IsVisible(from Path) bool

	String() string
}

// ModulePath is the default Path implementation: slash-joined hierarchical
// segments. A definition is visible from a requesting path when its own path
// is the root, equal to the requester's, or an ancestor of it — children see
// their ancestors' declarations, not the other way around.
type ModulePath []string

// NewModulePath builds a path from segments.
func NewModulePath(segments ...string) ModulePath {
	return ModulePath(segments)
}

// ParseModulePath splits a slash-joined path string. The empty string is the
// root path.
func ParseModulePath(s string) ModulePath {
	if s == "" {
		return ModulePath{}
	}
	return ModulePath(strings.Split(s, "/"))
}

func (p ModulePath) Equal(other Path) bool {
	return other != nil && p.String() == other.String()
}

func (p ModulePath) IsVisible(from Path) bool {
	if len(p) == 0 || from == nil {
		return true
	}
	if p.Equal(from) {
		return true
	}
	// Ancestor check on the segment boundary.
	return strings.HasPrefix(from.String(), p.String()+"/")
}

func (p ModulePath) String() string {
	return strings.Join(p, "/")
}

// PathSet is a set of paths keyed on their string form.
type PathSet map[string]struct{}

// NewPathSet builds a set from the given paths.
func NewPathSet(paths ...Path) PathSet {
	set := make(PathSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}
	return set
}

// Add inserts a path into the set.
func (s PathSet) Add(p Path) {
	if p != nil {
		s[p.String()] = struct{}{}
	}
}

// Contains reports whether the set holds the given path. A nil path is never
// a member.
func (s PathSet) Contains(p Path) bool {
	if p == nil {
		return false
	}
	_, ok := s[p.String()]
	return ok
}
