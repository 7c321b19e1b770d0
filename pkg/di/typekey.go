package di

import (
	"reflect"
)

// TypeKey is an opaque type tag compared by value. The registry core never
// introspects types at runtime; tags are derived once, at the declaration
// boundary, and matched by equality from then on.
type TypeKey string

// KeyOf derives the type tag for T. Pointer types are normalised to their
// element type, so KeyOf[*Service]() and KeyOf[Service]() produce the same
// tag.
func KeyOf[T any]() TypeKey {
	return keyForType(reflect.TypeOf((*T)(nil)).Elem())
}

// KeyFor derives the type tag for a value. A nil value yields the empty tag.
func KeyFor(v interface{}) TypeKey {
	if v == nil {
		return ""
	}
	return keyForType(reflect.TypeOf(v))
}

func keyForType(t reflect.Type) TypeKey {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() != "" {
		return TypeKey(t.PkgPath() + "." + t.Name())
	}
	return TypeKey(t.String())
}
