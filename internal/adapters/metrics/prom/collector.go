// Package prom exposes pool and persistence activity as Prometheus metrics
// on a private registry.
package prom

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bnema/gamekit/internal/pool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const defaultNamespace = "gamekit"

type Collector struct {
	registry *prometheus.Registry

	poolCreated  *prometheus.CounterVec
	poolAcquire  *prometheus.CounterVec
	poolRelease  *prometheus.CounterVec
	saveOps      *prometheus.CounterVec
	saveDuration *prometheus.HistogramVec
}

func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = defaultNamespace
	}

	c := &Collector{registry: prometheus.NewRegistry()}

	c.poolCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "instances_created_total",
			Help:      "Instances cloned from the pool prototype",
		},
		[]string{"pool"},
	)

	c.poolAcquire = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "acquire_total",
			Help:      "Acquire calls, split by whether an idle instance was reused",
		},
		[]string{"pool", "reused"},
	)

	c.poolRelease = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "release_total",
			Help:      "Instances returned to the idle queue",
		},
		[]string{"pool"},
	)

	c.saveOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "save",
			Name:      "operations_total",
			Help:      "Persistence operations by kind and outcome",
		},
		[]string{"op", "result"},
	)

	c.saveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "save",
			Name:      "duration_seconds",
			Help:      "Time spent in persistence operations",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"op"},
	)

	c.registry.MustRegister(c.poolCreated, c.poolAcquire, c.poolRelease, c.saveOps, c.saveDuration)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteText writes every gathered family in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("encode metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}

// PoolObserver returns a pool.Observer that counts activity under name.
func (c *Collector) PoolObserver(name string) pool.Observer {
	return poolObserver{collector: c, name: name}
}

type poolObserver struct {
	collector *Collector
	name      string
}

func (o poolObserver) InstanceCreated() {
	o.collector.poolCreated.WithLabelValues(o.name).Inc()
}

func (o poolObserver) InstanceAcquired(reused bool) {
	o.collector.poolAcquire.WithLabelValues(o.name, strconv.FormatBool(reused)).Inc()
}

func (o poolObserver) InstanceReleased() {
	o.collector.poolRelease.WithLabelValues(o.name).Inc()
}
