// Package metrics exports the host probe as Prometheus gauges.
package metrics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/log"
)

const namespace = "rinfo"

// GatherFunc runs one probe.
type GatherFunc func(context.Context) *hostinfo.Info

// Config holds the configuration for the metrics collector
type Config struct {
	Gather   GatherFunc
	Interval time.Duration
	// Registry defaults to a fresh registry.
	Registry *prometheus.Registry
}

// Collector refreshes the probe gauges on an interval.
type Collector struct {
	gather   GatherFunc
	interval time.Duration
	registry *prometheus.Registry

	cores         prometheus.Gauge
	threads       prometheus.Gauge
	frequency     prometheus.Gauge
	uptime        prometheus.Gauge
	memTotal      prometheus.Gauge
	memAvailable  prometheus.Gauge
	memUsed       prometheus.Gauge
	info          *prometheus.GaugeVec
	sectionErrors *prometheus.GaugeVec

	ready    atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewCollector creates a collector and registers its gauges.
func NewCollector(cfg Config) (*Collector, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Second
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.Gather == nil {
		cfg.Gather = func(ctx context.Context) *hostinfo.Info {
			opts := hostinfo.AllSections()
			opts.Motherboard = false
			return hostinfo.Gather(ctx, opts)
		}
	}

	c := &Collector{
		gather:   cfg.Gather,
		interval: cfg.Interval,
		registry: cfg.Registry,
		cores: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cpu_cores",
			Help: "Number of physical CPU cores",
		}),
		threads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cpu_threads",
			Help: "Number of hardware threads",
		}),
		frequency: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cpu_frequency_mhz",
			Help: "CPU clock rate in MHz",
		}),
		uptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "uptime_seconds",
			Help: "Time since boot in seconds",
		}),
		memTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "memory_total_bytes",
			Help: "Total memory in bytes",
		}),
		memAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "memory_available_bytes",
			Help: "Available memory in bytes",
		}),
		memUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "memory_used_bytes",
			Help: "Used memory in bytes",
		}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "info",
			Help: "Host description, always 1",
		}, []string{"cpu", "os", "kernel", "hostname", "shell"}),
		sectionErrors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "probe_section_error",
			Help: "1 if the last probe of the section failed",
		}, []string{"section"}),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, col := range []prometheus.Collector{
		c.cores, c.threads, c.frequency, c.uptime,
		c.memTotal, c.memAvailable, c.memUsed,
		c.info, c.sectionErrors,
	} {
		if err := c.registry.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Registry returns the registry holding the collector's gauges.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Ready reports whether at least one probe completed.
func (c *Collector) Ready() bool {
	return c.ready.Load()
}

// Refresh runs one probe and updates the gauges.
func (c *Collector) Refresh(ctx context.Context) {
	info := c.gather(ctx)
	if info == nil {
		return
	}

	for _, section := range hostinfo.Sections {
		failed := 0.0
		if _, ok := info.Errors[section]; ok {
			failed = 1
		}
		c.sectionErrors.WithLabelValues(string(section)).Set(failed)
	}

	// A section without data reads 0 rather than its last value.
	cpu := info.CPU
	if cpu == nil {
		cpu = &hostinfo.CPU{}
	}
	c.cores.Set(float64(cpu.Cores))
	c.threads.Set(float64(cpu.Threads))
	c.frequency.Set(float64(cpu.ClockMHz))
	c.uptime.Set(cpu.Uptime.Seconds())

	mem := info.Memory
	if mem == nil {
		mem = &hostinfo.Memory{}
	}
	c.memTotal.Set(float64(mem.Total))
	c.memAvailable.Set(float64(mem.Available))
	c.memUsed.Set(float64(mem.Used))

	var osName, kernel, shell string
	if info.OS != nil {
		osName, kernel = info.OS.Name, info.OS.Kernel
	}
	if info.Caller != nil {
		shell = info.Caller.Shell
	}

	c.info.Reset()
	c.info.WithLabelValues(cpu.Name, osName, kernel, info.Hostname, shell).Set(1)

	c.ready.Store(true)
}

// Start refreshes immediately, then on every interval until Stop or ctx
// is done.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("metrics collection goroutine panicked: %v", r)
			}
		}()

		c.Refresh(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.Refresh(ctx)
			case <-ctx.Done():
				return
			case <-c.stopChan:
				return
			}
		}
	}()
}

// Stop stops the collection loop and waits for it to exit. It must only be
// called after Start.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	<-c.done
}
