package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinition_IdentityKey_ExcludesPath(t *testing.T) {
	a := &Definition{Name: "svc", Type: "service.Foo", Path: ParseModulePath("app/web")}
	b := &Definition{Name: "svc", Type: "service.Foo", Path: ParseModulePath("app/internal")}

	assert.True(t, a.SameIdentity(b))
	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
}

func TestDefinition_IdentityKey_BoundSetOrderInsensitive(t *testing.T) {
	a := &Definition{Type: "service.Foo", BoundTypes: []TypeKey{"io.Reader", "io.Writer"}}
	b := &Definition{Type: "service.Foo", BoundTypes: []TypeKey{"io.Writer", "io.Reader"}}
	c := &Definition{Type: "service.Foo", BoundTypes: []TypeKey{"io.Reader", "io.Reader", "io.Writer"}}

	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
	assert.Equal(t, a.IdentityKey(), c.IdentityKey())
}

func TestDefinition_IdentityKey_DistinguishesNameTypeAndBoundSet(t *testing.T) {
	base := &Definition{Name: "svc", Type: "service.Foo"}

	assert.NotEqual(t, base.IdentityKey(), (&Definition{Name: "other", Type: "service.Foo"}).IdentityKey())
	assert.NotEqual(t, base.IdentityKey(), (&Definition{Name: "svc", Type: "service.Bar"}).IdentityKey())
	assert.NotEqual(t, base.IdentityKey(), (&Definition{Name: "svc", Type: "service.Foo", BoundTypes: []TypeKey{"io.Reader"}}).IdentityKey())
}

func TestDefinition_WithPath_DoesNotMutateOriginal(t *testing.T) {
	original := &Definition{Name: "svc", Type: "service.Foo"}

	attributed := original.WithPath(ParseModulePath("app/web"))

	assert.Nil(t, original.Path)
	assert.Equal(t, "app/web", attributed.Path.String())
	assert.True(t, original.SameIdentity(attributed))
}

func TestDefinition_Satisfies(t *testing.T) {
	def := &Definition{Type: "service.Foo", BoundTypes: []TypeKey{"io.Reader"}}

	assert.True(t, def.Satisfies("service.Foo"))
	assert.True(t, def.Satisfies("io.Reader"))
	assert.False(t, def.Satisfies("io.Writer"))
}

func TestDefinition_Sees_NilPredicateSeesEverything(t *testing.T) {
	requester := &Definition{Name: "a", Type: "service.A"}
	candidate := &Definition{Name: "b", Type: "service.B"}

	assert.True(t, requester.Sees(candidate))
	assert.False(t, requester.Sees(nil))
}

func TestDefinition_Sees_AlwaysSeesItself(t *testing.T) {
	requester := &Definition{
		Name:   "a",
		Type:   "service.A",
		CanSee: func(*Definition) bool { return false },
	}

	assert.True(t, requester.Sees(requester))
	// A path-attributed copy still counts as itself.
	assert.True(t, requester.Sees(requester.WithPath(ParseModulePath("app"))))
	assert.False(t, requester.Sees(&Definition{Name: "b", Type: "service.B"}))
}

func TestDefinition_String(t *testing.T) {
	named := &Definition{
		Name:       "svc",
		Type:       "service.Foo",
		BoundTypes: []TypeKey{"io.Reader"},
		Path:       ParseModulePath("app/web"),
	}
	unnamed := &Definition{Type: "service.Foo"}

	assert.Equal(t, "svc (service.Foo) bound to [io.Reader] @ app/web", named.String())
	assert.Equal(t, "service.Foo", unnamed.String())
}

type fakeService struct{}

type fakeIface interface{ Do() }

func TestKeyOf_NormalisesPointers(t *testing.T) {
	assert.Equal(t, KeyOf[fakeService](), KeyOf[*fakeService]())
	assert.Contains(t, string(KeyOf[fakeService]()), "fakeService")
}

func TestKeyOf_Interface(t *testing.T) {
	assert.Contains(t, string(KeyOf[fakeIface]()), "fakeIface")
	assert.NotEqual(t, KeyOf[fakeIface](), KeyOf[fakeService]())
}

func TestKeyFor_Values(t *testing.T) {
	assert.Equal(t, KeyOf[fakeService](), KeyFor(fakeService{}))
	assert.Equal(t, KeyOf[fakeService](), KeyFor(&fakeService{}))
	assert.Equal(t, TypeKey(""), KeyFor(nil))
}
