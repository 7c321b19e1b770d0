package di

import (
	"sync"

	"github.com/modfold/bind/errors"
	"github.com/modfold/bind/pkg/logger"
	"github.com/modfold/bind/pkg/metrics"
)

// RegistryConfig contains configuration for the definition registry.
type RegistryConfig struct {
	Logger  logger.Logger
	Metrics metrics.Metrics
}

// Registry owns the store of declared definitions and enforces the override
// policy on declaration. Declarations happen during a bootstrap phase;
// resolution is read-only and may run concurrently afterward. One RWMutex
// serialises writes against each other and against in-flight reads, so a
// reader never observes an override mid-replacement.
type Registry struct {
	mu      sync.RWMutex
	store   *Store
	logger  logger.Logger
	metrics metrics.Metrics
}

// NewRegistry creates an empty registry. Nil config fields default to noop
// implementations.
func NewRegistry(config RegistryConfig) *Registry {
	log := config.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	m := config.Metrics
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Registry{
		store:   NewStore(),
		logger:  log,
		metrics: m,
	}
}

// Declare inserts a definition at the given module path, or replaces the
// definition occupying the same identity slot when overriding is allowed.
// The identity comparison excludes the path: re-declaring the same name+type
// under a different path still collides with the existing slot.
// Returns the effective (path-attributed) definition on success.
func (r *Registry) Declare(def *Definition, at Path) (*Definition, error) {
	effective := def.WithPath(at)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, found := r.store.Lookup(effective.IdentityKey())
	if found {
		if !effective.AllowOverride {
			r.metrics.Counter("bind.di.override_conflicts").Inc()
			return nil, errors.ErrOverrideConflict(existing.String(), effective.String()).
				WithContext("existing_definition", existing).
				WithContext("incoming_definition", effective)
		}

		r.store.Remove(existing)
		r.store.Add(effective)

		r.logger.Info("[module] override "+effective.String(),
			logger.String("name", effective.Name),
			logger.String("type", string(effective.Type)),
			logger.Stringer("path", pathOrRoot(effective.Path)),
		)
		r.metrics.Counter("bind.di.definitions_overridden").Inc()
		return effective, nil
	}

	r.store.Add(effective)

	r.logger.Info("[module] declare "+effective.String(),
		logger.String("name", effective.Name),
		logger.String("type", string(effective.Type)),
		logger.Stringer("path", pathOrRoot(effective.Path)),
	)
	r.metrics.Counter("bind.di.definitions_declared").Inc()
	r.metrics.Gauge("bind.di.definitions_count").Set(float64(r.store.Len()))
	return effective, nil
}

// Clear empties the registry, leaving it in the same state as immediately
// after construction. Intended for container shutdown or test isolation.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store.Clear()
	r.logger.Debug("[module] clear")
	r.metrics.Gauge("bind.di.definitions_count").Set(0)
}

// Len returns the number of live definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Len()
}

// pathOrRoot keeps the structured path field non-nil for logging.
func pathOrRoot(p Path) Path {
	if p == nil {
		return ModulePath{}
	}
	return p
}
