package bind

import (
	"github.com/modfold/bind/pkg/di"
	"github.com/modfold/bind/pkg/logger"
	"github.com/modfold/bind/pkg/metrics"
)

// Definition describes one declared injectable component.
type Definition = di.Definition

// TypeKey is the opaque type tag definitions are matched by.
type TypeKey = di.TypeKey

// Path is the hierarchical scope marker for declarations.
type Path = di.Path

// ModulePath is the default slash-segmented Path implementation.
type ModulePath = di.ModulePath

// PathSet is a membership set of paths.
type PathSet = di.PathSet

// Registry is the definition registry and resolution engine.
type Registry = di.Registry

// RegistryConfig configures a Registry.
type RegistryConfig = di.RegistryConfig

// CandidateSupplier produces the candidate list for one resolution.
type CandidateSupplier = di.CandidateSupplier

// Logger is the logging interface the registry emits events through.
type Logger = logger.Logger

// Metrics is the metrics interface the registry counts operations through.
type Metrics = metrics.Metrics

// NewRegistry creates an empty registry.
var NewRegistry = di.NewRegistry

// Resolve runs the three-gate resolution over a supplied candidate list.
var Resolve = di.Resolve

// NewModulePath builds a path from segments.
var NewModulePath = di.NewModulePath

// ParseModulePath splits a slash-joined path string.
var ParseModulePath = di.ParseModulePath

// NewPathSet builds a membership set from paths.
var NewPathSet = di.NewPathSet

// NewDevelopmentLogger creates a console logger at debug level.
var NewDevelopmentLogger = logger.NewDevelopmentLogger

// NewNoopLogger creates a logger that discards everything.
var NewNoopLogger = logger.NewNoopLogger

// NewPrometheusMetrics creates a prometheus-backed metrics collector.
var NewPrometheusMetrics = metrics.NewPrometheus

// KeyOf derives the type tag for T at the declaration boundary.
func KeyOf[T any]() TypeKey {
	return di.KeyOf[T]()
}

// KeyFor derives the type tag for a value.
var KeyFor = di.KeyFor
