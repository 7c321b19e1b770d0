package di

// Store is the authoritative collection of currently declared definitions: an
// identity-keyed map plus a declaration-order slice. It is a dumb container —
// identity uniqueness is enforced by its caller (the registry's declare path),
// and it carries no locking of its own.
type Store struct {
	byIdentity map[string]*Definition
	order      []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byIdentity: make(map[string]*Definition),
		order:      make([]string, 0),
	}
}

// Add inserts a definition. The caller must have ensured no live definition
// shares its identity.
func (s *Store) Add(def *Definition) {
	key := def.IdentityKey()
	s.byIdentity[key] = def
	s.order = append(s.order, key)
}

// Remove deletes the definition occupying def's identity slot. Reports
// whether anything was removed.
func (s *Store) Remove(def *Definition) bool {
	key := def.IdentityKey()
	if _, ok := s.byIdentity[key]; !ok {
		return false
	}
	delete(s.byIdentity, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the definition occupying the given identity slot.
func (s *Store) Lookup(identityKey string) (*Definition, bool) {
	def, ok := s.byIdentity[identityKey]
	return def, ok
}

// All returns the live definitions in declaration order.
func (s *Store) All() []*Definition {
	defs := make([]*Definition, 0, len(s.order))
	for _, key := range s.order {
		defs = append(defs, s.byIdentity[key])
	}
	return defs
}

// Len returns the number of live definitions.
func (s *Store) Len() int {
	return len(s.byIdentity)
}

// Clear empties the store, leaving it as freshly constructed.
func (s *Store) Clear() {
	s.byIdentity = make(map[string]*Definition)
	s.order = s.order[:0]
}
