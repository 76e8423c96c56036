package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/hostinfo"
)

func fakeInfo() *hostinfo.Info {
	return &hostinfo.Info{
		CPU:      &hostinfo.CPU{Name: "Test CPU", Cores: 4, Threads: 8, ClockMHz: 2400, Uptime: 90 * time.Second},
		Memory:   &hostinfo.Memory{Total: 1000, Available: 600, Used: 400},
		Hostname: "node-1",
		Caller:   &caller.Info{User: "root", Shell: "bash"},
		OS:       &hostinfo.OperatingSystem{Name: "Debian GNU/Linux", Kernel: "6.1.0"},
		Errors:   map[hostinfo.Section]error{hostinfo.SectionIP: errors.New("no address")},
	}
}

func newTestCollector(t *testing.T, gather GatherFunc) *Collector {
	t.Helper()
	c, err := NewCollector(Config{Gather: gather, Interval: 10 * time.Millisecond})
	require.NoError(t, err)
	return c
}

func TestRefresh(t *testing.T) {
	c := newTestCollector(t, func(context.Context) *hostinfo.Info { return fakeInfo() })
	assert.False(t, c.Ready())

	c.Refresh(context.Background())

	assert.True(t, c.Ready())
	assert.Equal(t, 4.0, testutil.ToFloat64(c.cores))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.threads))
	assert.Equal(t, 2400.0, testutil.ToFloat64(c.frequency))
	assert.Equal(t, 90.0, testutil.ToFloat64(c.uptime))
	assert.Equal(t, 1000.0, testutil.ToFloat64(c.memTotal))
	assert.Equal(t, 600.0, testutil.ToFloat64(c.memAvailable))
	assert.Equal(t, 400.0, testutil.ToFloat64(c.memUsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sectionErrors.WithLabelValues("ip")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.sectionErrors.WithLabelValues("cpu")))

	expected := `
# HELP rinfo_info Host description, always 1
# TYPE rinfo_info gauge
rinfo_info{cpu="Test CPU",hostname="node-1",kernel="6.1.0",os="Debian GNU/Linux",shell="bash"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(c.info, strings.NewReader(expected)))
}

func TestRefreshZeroesFailedSections(t *testing.T) {
	var failing atomic.Bool
	c := newTestCollector(t, func(context.Context) *hostinfo.Info {
		info := fakeInfo()
		if failing.Load() {
			info.CPU, info.Memory = nil, nil
			info.Errors[hostinfo.SectionCPU] = errors.New("cpuinfo unreadable")
			info.Errors[hostinfo.SectionMemory] = errors.New("meminfo unreadable")
		}
		return info
	})

	c.Refresh(context.Background())
	require.Equal(t, 4.0, testutil.ToFloat64(c.cores))
	require.Equal(t, 1000.0, testutil.ToFloat64(c.memTotal))

	failing.Store(true)
	c.Refresh(context.Background())

	for name, g := range map[string]prometheus.Gauge{
		"cores":        c.cores,
		"threads":      c.threads,
		"frequency":    c.frequency,
		"uptime":       c.uptime,
		"memory total": c.memTotal,
		"memory avail": c.memAvailable,
		"memory used":  c.memUsed,
	} {
		assert.Zero(t, testutil.ToFloat64(g), name)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sectionErrors.WithLabelValues("cpu")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sectionErrors.WithLabelValues("memory")))
}

func TestRefreshReplacesInfoSeries(t *testing.T) {
	var host atomic.Value
	host.Store("node-1")
	c := newTestCollector(t, func(context.Context) *hostinfo.Info {
		info := fakeInfo()
		info.Hostname = host.Load().(string)
		return info
	})

	c.Refresh(context.Background())
	host.Store("node-2")
	c.Refresh(context.Background())

	assert.Equal(t, 1, testutil.CollectAndCount(c.info))
}

func TestRegistryNames(t *testing.T) {
	c := newTestCollector(t, func(context.Context) *hostinfo.Info { return fakeInfo() })
	c.Refresh(context.Background())

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"rinfo_cpu_cores",
		"rinfo_cpu_threads",
		"rinfo_cpu_frequency_mhz",
		"rinfo_uptime_seconds",
		"rinfo_memory_total_bytes",
		"rinfo_memory_available_bytes",
		"rinfo_memory_used_bytes",
		"rinfo_info",
		"rinfo_probe_section_error",
	}, names)
}

func TestStartStop(t *testing.T) {
	var calls atomic.Int32
	c := newTestCollector(t, func(context.Context) *hostinfo.Info {
		calls.Add(1)
		return fakeInfo()
	})

	c.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	c.Stop()

	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "no refresh after Stop")

	// Stop is idempotent.
	c.Stop()
}

func TestStartStopsWithContext(t *testing.T) {
	c := newTestCollector(t, func(context.Context) *hostinfo.Info { return fakeInfo() })

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	require.Eventually(t, c.Ready, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop on context cancellation")
	}
}

func TestHandler(t *testing.T) {
	c := newTestCollector(t, func(context.Context) *hostinfo.Info { return fakeInfo() })
	srv := httptest.NewServer(Handler(c))
	defer srv.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	code, _ := get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	c.Refresh(context.Background())

	code, body := get("/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "rinfo_cpu_cores 4")
	assert.Contains(t, body, `rinfo_info{cpu="Test CPU"`)

	code, _ = get("/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServerShutdown(t *testing.T) {
	c := newTestCollector(t, func(context.Context) *hostinfo.Info { return fakeInfo() })
	s := NewServer("127.0.0.1:0", c)

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe() }()

	// Give the listener a moment before shutting down.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-errc)
}
