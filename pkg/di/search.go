package di

// Search queries are pure reads over the store. Each returns a fresh slice
// snapshot, so callers (the resolver in particular) never hold the registry
// lock while running visibility predicates.

// SearchByName returns the definitions whose name equals name and which
// satisfy t as primary or bound type, in declaration order.
func (r *Registry) SearchByName(name string, t TypeKey) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*Definition
	for _, def := range r.store.All() {
		if def.Name == name && def.Satisfies(t) {
			matches = append(matches, def)
		}
	}
	return matches
}

// SearchAll returns every definition satisfying t: primary-type matches first,
// then bound-type matches, each group in declaration order. A definition
// matching both ways appears twice — deduplication is the resolver's job,
// which keeps this a cheap, composable query primitive.
func (r *Registry) SearchAll(t TypeKey) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.store.All()
	var matches []*Definition
	for _, def := range all {
		if def.Type == t {
			matches = append(matches, def)
		}
	}
	for _, def := range all {
		if def.HasBound(t) {
			matches = append(matches, def)
		}
	}
	return matches
}

// DefinitionsForPaths returns every definition whose module path is a member
// of the given set, in declaration order. This is a module's full declared
// surface, not a single-type resolution.
func (r *Registry) DefinitionsForPaths(paths PathSet) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*Definition
	for _, def := range r.store.All() {
		if paths.Contains(def.Path) {
			matches = append(matches, def)
		}
	}
	return matches
}

// Definitions returns all live definitions in declaration order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.All()
}
