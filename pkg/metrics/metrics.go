package metrics

// Counter is a monotonically increasing metric handle.
type Counter interface {
	Inc()
	Add(delta float64)
}

// Gauge is a metric handle that can go up and down.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// Metrics hands out metric handles by dotted name. The registry counts
// declarations, overrides and conflicts and keeps a definitions gauge through
// this interface; implementations must be safe for concurrent use.
type Metrics interface {
	Counter(name string, tags ...string) Counter
	Gauge(name string, tags ...string) Gauge
}

// noop implements Metrics and discards everything.
type noop struct{}

type noopHandle struct{}

// NewNoop creates a Metrics implementation that does nothing.
func NewNoop() Metrics {
	return noop{}
}

func (noop) Counter(name string, tags ...string) Counter { return noopHandle{} }
func (noop) Gauge(name string, tags ...string) Gauge     { return noopHandle{} }

func (noopHandle) Inc()              {}
func (noopHandle) Add(delta float64) {}
func (noopHandle) Set(value float64) {}
func (noopHandle) Dec()              {}
