package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SearchByName_MatchesPrimaryOrBound(t *testing.T) {
	r := newTestRegistry()

	primary, err := r.Declare(&Definition{Name: "svc", Type: "service.Foo"}, nil)
	require.NoError(t, err)
	bound, err := r.Declare(&Definition{Name: "svc", Type: "service.Bar", BoundTypes: []TypeKey{"service.Foo"}}, nil)
	require.NoError(t, err)
	_, err = r.Declare(&Definition{Name: "other", Type: "service.Foo"}, nil)
	require.NoError(t, err)

	matches := r.SearchByName("svc", "service.Foo")
	require.Len(t, matches, 2)
	assert.Same(t, primary, matches[0])
	assert.Same(t, bound, matches[1])
}

func TestRegistry_SearchAll_PrimaryBeforeBound(t *testing.T) {
	r := newTestRegistry()

	boundOnly, err := r.Declare(&Definition{Name: "a", Type: "service.Bar", BoundTypes: []TypeKey{"service.Foo"}}, nil)
	require.NoError(t, err)
	primary, err := r.Declare(&Definition{Name: "b", Type: "service.Foo"}, nil)
	require.NoError(t, err)

	matches := r.SearchAll("service.Foo")
	require.Len(t, matches, 2)
	// Primary-type matches precede bound-type matches even though the
	// bound-only definition was declared first.
	assert.Same(t, primary, matches[0])
	assert.Same(t, boundOnly, matches[1])
}

func TestRegistry_SearchAll_NoDedupAcrossPrimaryAndBound(t *testing.T) {
	r := newTestRegistry()

	a, err := r.Declare(&Definition{Name: "svc", Type: "service.Foo"}, nil)
	require.NoError(t, err)
	both, err := r.Declare(&Definition{Name: "b", Type: "service.Foo", BoundTypes: []TypeKey{"service.Foo"}}, nil)
	require.NoError(t, err)

	matches := r.SearchAll("service.Foo")
	// A definition matching as both primary and bound appears twice; the
	// resolver owns deduplication.
	require.Len(t, matches, 3)
	assert.Same(t, a, matches[0])
	assert.Same(t, both, matches[1])
	assert.Same(t, both, matches[2])
}

func TestRegistry_SearchAll_DeclarationOrderWithinGroups(t *testing.T) {
	r := newTestRegistry()

	first, err := r.Declare(&Definition{Name: "a", Type: "service.Foo"}, nil)
	require.NoError(t, err)
	second, err := r.Declare(&Definition{Name: "b", Type: "service.Foo"}, nil)
	require.NoError(t, err)

	matches := r.SearchAll("service.Foo")
	require.Len(t, matches, 2)
	assert.Same(t, first, matches[0])
	assert.Same(t, second, matches[1])
}

func TestRegistry_DefinitionsForPaths(t *testing.T) {
	r := newTestRegistry()

	web, err := r.Declare(&Definition{Name: "a", Type: "service.A"}, ParseModulePath("app/web"))
	require.NoError(t, err)
	_, err = r.Declare(&Definition{Name: "b", Type: "service.B"}, ParseModulePath("app/worker"))
	require.NoError(t, err)
	webAdmin, err := r.Declare(&Definition{Name: "c", Type: "service.C"}, ParseModulePath("app/web/admin"))
	require.NoError(t, err)

	matches := r.DefinitionsForPaths(NewPathSet(ParseModulePath("app/web"), ParseModulePath("app/web/admin")))
	require.Len(t, matches, 2)
	assert.Same(t, web, matches[0])
	assert.Same(t, webAdmin, matches[1])
}

func TestRegistry_Search_EmptyResults(t *testing.T) {
	r := newTestRegistry()

	assert.Empty(t, r.SearchAll("service.Foo"))
	assert.Empty(t, r.SearchByName("svc", "service.Foo"))
	assert.Empty(t, r.DefinitionsForPaths(NewPathSet(ParseModulePath("app"))))
}
