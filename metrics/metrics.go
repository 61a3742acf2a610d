// Package metrics exports property bag notifications as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidroman0O/lazyprop/store"
)

var (
	// ErrInvalidConfig is returned when the collector configuration is invalid.
	ErrInvalidConfig = errors.New("invalid metrics configuration")

	// ErrRegistrationFailed is returned when metric registration fails.
	ErrRegistrationFailed = errors.New("metric registration failed")
)

// Config configures a Collector.
type Config struct {
	// Namespace prefixes every metric name. Default: "lazyprop".
	Namespace string

	// Registry is the Prometheus registry to use.
	// If nil, uses prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Collector counts the notifications raised by attached bags and tracks how
// many properties each one holds.
type Collector struct {
	changing   *prometheus.CounterVec
	changed    *prometheus.CounterVec
	properties *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them. Metrics already
// registered by an earlier Collector are reused.
func NewCollector(cfg Config) (*Collector, error) {
	if cfg.Namespace == "" {
		cfg.Namespace = "lazyprop"
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		changing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "property_changing_total",
			Help:      "Property changing notifications raised.",
		}, []string{"bag", "property"}),
		changed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "property_changed_total",
			Help:      "Property changed notifications raised.",
		}, []string{"bag", "property"}),
		properties: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "properties",
			Help:      "Properties currently stored in the bag.",
		}, []string{"bag"}),
	}

	var err error
	if c.changing, err = register(registry, c.changing); err != nil {
		return nil, err
	}
	if c.changed, err = register(registry, c.changed); err != nil {
		return nil, err
	}
	if c.properties, err = register(registry, c.properties); err != nil {
		return nil, err
	}
	return c, nil
}

func register[C prometheus.Collector](registry prometheus.Registerer, collector C) (C, error) {
	err := registry.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyErr prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyErr) {
		if existing, ok := alreadyErr.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return collector, errors.Join(ErrRegistrationFailed, err)
}

// Attach starts counting the notifications of b under the label bagName.
// The returned function detaches b and drops its gauge.
func (c *Collector) Attach(bagName string, b *store.PropertyBag) (func(), error) {
	if bagName == "" {
		return nil, fmt.Errorf("%w: bag name cannot be empty", ErrInvalidConfig)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: bag", store.ErrNilArgument)
	}

	gauge := c.properties.WithLabelValues(bagName)
	gauge.Set(float64(b.PropertiesCount()))

	changingSub, err := b.OnPropertyChanging(func(e store.Event) {
		c.changing.WithLabelValues(bagName, e.Name).Inc()
	})
	if err != nil {
		return nil, err
	}
	changedSub, err := b.OnPropertyChanged(func(e store.Event) {
		c.changed.WithLabelValues(bagName, e.Name).Inc()
		gauge.Set(float64(e.Source.PropertiesCount()))
	})
	if err != nil {
		changingSub.Unsubscribe()
		return nil, err
	}

	return func() {
		changingSub.Unsubscribe()
		changedSub.Unsubscribe()
		c.properties.DeleteLabelValues(bagName)
	}, nil
}
