package di

import (
	"fmt"
	"sort"
	"strings"
)

// Definition describes one declared injectable component: a bean definition.
// It carries everything the registry needs to place it in an override slot,
// match it against queries and gate its visibility; it never carries a
// constructor — instance creation belongs to the surrounding container.
type Definition struct {
	// Name is the optional binding name. Part of the identity tuple.
	Name string

	// Type is the primary type tag. Part of the identity tuple.
	Type TypeKey

	// BoundTypes are additional types this definition satisfies besides its
	// primary type, e.g. interfaces it implements. Set semantics; part of the
	// identity tuple.
	BoundTypes []TypeKey

	// Path is the module path this definition was declared at. Excluded from
	// identity: name+type uniqueness is container-global.
	Path Path

	// AllowOverride permits a later declaration with the same identity to
	// replace this slot.
	AllowOverride bool

	// CanSee decides, from this definition's perspective as the currently
	// resolving context, whether another definition may satisfy one of its
	// dependencies. Nil means everything is visible. A definition always sees
	// itself regardless of the predicate.
	CanSee func(other *Definition) bool
}

// WithPath returns a copy of the definition attributed to the given path.
// The receiver is not mutated.
func (d *Definition) WithPath(path Path) *Definition {
	clone := *d
	clone.Path = path
	return &clone
}

// HasBound reports whether the bound-type set contains t.
func (d *Definition) HasBound(t TypeKey) bool {
	for _, bound := range d.BoundTypes {
		if bound == t {
			return true
		}
	}
	return false
}

// Satisfies reports whether the definition matches t as its primary type or
// through its bound-type set.
func (d *Definition) Satisfies(t TypeKey) bool {
	return d.Type == t || d.HasBound(t)
}

// IdentityKey derives the identity tuple (name, primary type, bound-type set)
// as a map key. Bound types are sorted and deduplicated so set equality holds
// regardless of declaration order; the path is deliberately excluded.
func (d *Definition) IdentityKey() string {
	parts := make([]string, 0, len(d.BoundTypes)+2)
	parts = append(parts, d.Name, string(d.Type))

	if len(d.BoundTypes) > 0 {
		bound := make([]string, 0, len(d.BoundTypes))
		for _, t := range d.BoundTypes {
			bound = append(bound, string(t))
		}
		sort.Strings(bound)
		last := ""
		for i, t := range bound {
			if i > 0 && t == last {
				continue
			}
			parts = append(parts, t)
			last = t
		}
	}

	return strings.Join(parts, "\x1f")
}

// SameIdentity reports whether two definitions occupy the same registry slot.
func (d *Definition) SameIdentity(other *Definition) bool {
	return other != nil && d.IdentityKey() == other.IdentityKey()
}

// Sees reports whether the definition, acting as the resolving context, may
// use other to satisfy a dependency.
func (d *Definition) Sees(other *Definition) bool {
	if other == nil {
		return false
	}
	if d == other || d.SameIdentity(other) {
		return true
	}
	if d.CanSee == nil {
		return true
	}
	return d.CanSee(other)
}

// String renders a human-readable description used in events and error
// payloads.
func (d *Definition) String() string {
	var b strings.Builder
	if d.Name != "" {
		fmt.Fprintf(&b, "%s (%s)", d.Name, d.Type)
	} else {
		b.WriteString(string(d.Type))
	}
	if len(d.BoundTypes) > 0 {
		bound := make([]string, len(d.BoundTypes))
		for i, t := range d.BoundTypes {
			bound[i] = string(t)
		}
		fmt.Fprintf(&b, " bound to [%s]", strings.Join(bound, ", "))
	}
	if d.Path != nil && d.Path.String() != "" {
		fmt.Fprintf(&b, " @ %s", d.Path)
	}
	return b.String()
}
