// Package bind is the definition registry and resolution core of a
// dependency-injection container. It stores declarations of injectable
// components (bean definitions), enforces the uniqueness/override policy on
// declaration, and resolves a lookup by name and/or type, within a visibility
// scope, to exactly one definition or a precise failure.
//
// The package does not construct instances, manage lifetimes or parse
// configuration; it is a pure in-memory library surface intended to sit at
// the centre of a surrounding container.
//
// Basic usage:
//
//	registry := bind.NewRegistry(bind.RegistryConfig{})
//
//	def := &bind.Definition{
//	    Name:       "userRepo",
//	    Type:       bind.KeyOf[PostgresUserRepo](),
//	    BoundTypes: []bind.TypeKey{bind.KeyOf[UserRepo]()},
//	}
//	if _, err := registry.Declare(def, bind.ParseModulePath("app/storage")); err != nil {
//	    return err
//	}
//
//	resolved, err := registry.ResolveType(bind.KeyOf[UserRepo](), bind.ParseModulePath("app/storage/sql"), nil)
//
// Failures are typed: override conflicts, missing definitions, ambiguous
// matches and visibility violations each carry a distinct error code and a
// diagnostic payload (see the errors package).
package bind
