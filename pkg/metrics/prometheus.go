package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// prometheusMetrics implements Metrics backed by a prometheus registry.
// Handles are created lazily and cached by name+tags, so repeated calls with
// the same name return the same underlying metric.
type prometheusMetrics struct {
	registerer prometheus.Registerer
	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
}

// NewPrometheus creates a Metrics implementation that registers its metrics
// with the given registerer. A nil registerer uses the default one.
func NewPrometheus(registerer prometheus.Registerer) Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &prometheusMetrics{
		registerer: registerer,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
	}
}

func (p *prometheusMetrics) Counter(name string, tags ...string) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey(name, tags)
	if c, ok := p.counters[key]; ok {
		return c
	}

	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        sanitizeName(name),
		ConstLabels: tagLabels(tags),
	})
	if err := p.registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			c = are.ExistingCollector.(prometheus.Counter)
		}
	}
	p.counters[key] = c
	return c
}

func (p *prometheusMetrics) Gauge(name string, tags ...string) Gauge {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey(name, tags)
	if g, ok := p.gauges[key]; ok {
		return g
	}

	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        sanitizeName(name),
		ConstLabels: tagLabels(tags),
	})
	if err := p.registerer.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			g = are.ExistingCollector.(prometheus.Gauge)
		}
	}
	p.gauges[key] = g
	return g
}

func cacheKey(name string, tags []string) string {
	if len(tags) == 0 {
		return name
	}
	return name + "|" + strings.Join(tags, "|")
}

// tagLabels folds variadic key/value tag pairs into prometheus labels.
// An odd trailing tag is dropped.
func tagLabels(tags []string) prometheus.Labels {
	if len(tags) < 2 {
		return nil
	}
	labels := make(prometheus.Labels, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		labels[sanitizeName(tags[i])] = tags[i+1]
	}
	return labels
}

// sanitizeName replaces characters prometheus rejects with underscores.
func sanitizeName(name string) string {
	result := strings.Builder{}
	for _, char := range name {
		if (char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '_' {
			result.WriteRune(char)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}
