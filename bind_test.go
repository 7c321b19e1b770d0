package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modfold/bind"
	"github.com/modfold/bind/errors"
)

type userRepo interface{ Find(id string) }

type postgresUserRepo struct{}

func (postgresUserRepo) Find(id string) {}

func TestFacade_DeclareAndResolve(t *testing.T) {
	registry := bind.NewRegistry(bind.RegistryConfig{})

	declared, err := registry.Declare(&bind.Definition{
		Name:       "userRepo",
		Type:       bind.KeyOf[postgresUserRepo](),
		BoundTypes: []bind.TypeKey{bind.KeyOf[userRepo]()},
	}, bind.ParseModulePath("app/storage"))
	require.NoError(t, err)

	resolved, err := registry.ResolveType(bind.KeyOf[userRepo](), bind.ParseModulePath("app/storage/sql"), nil)
	require.NoError(t, err)
	assert.Same(t, declared, resolved)

	// The storage module is not visible from a sibling module.
	_, err = registry.ResolveType(bind.KeyOf[userRepo](), bind.ParseModulePath("app/web"), nil)
	assert.True(t, errors.IsNotVisible(err))
}

func TestFacade_ResolveWithSupplier(t *testing.T) {
	registry := bind.NewRegistry(bind.RegistryConfig{})

	_, err := registry.Declare(&bind.Definition{Name: "repo", Type: bind.KeyOf[postgresUserRepo]()}, nil)
	require.NoError(t, err)

	supplier := func() []*bind.Definition {
		return registry.SearchByName("repo", bind.KeyOf[postgresUserRepo]())
	}
	resolved, err := bind.Resolve("repo", nil, supplier, nil)
	require.NoError(t, err)
	assert.Equal(t, "repo", resolved.Name)
}
