package hostinfo

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/config"
	"github.com/mrzor/rinfo/internal/log"
)

// ErrUnsupported is returned by sections the platform cannot answer.
var ErrUnsupported = errors.New("not supported on this platform")

// Section names one part of the probe.
type Section string

// Probe sections, in display order.
const (
	SectionCPU         Section = "cpu"
	SectionMemory      Section = "memory"
	SectionMotherboard Section = "motherboard"
	SectionIP          Section = "ip"
	SectionHostname    Section = "hostname"
	SectionCaller      Section = "caller"
	SectionOS          Section = "os"
)

// Sections lists every section in display order.
var Sections = []Section{
	SectionCPU,
	SectionMemory,
	SectionMotherboard,
	SectionIP,
	SectionHostname,
	SectionCaller,
	SectionOS,
}

// CPU describes the processor.
type CPU struct {
	Name     string        `json:"name"`
	Cores    int           `json:"cores"`
	Threads  int           `json:"threads"`
	ClockMHz uint64        `json:"clock_mhz"`
	Uptime   time.Duration `json:"uptime_ns"`
}

// Memory sizes are in bytes.
type Memory struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
	Used      uint64 `json:"used"`
}

// Info is the result of one probe. Nil or empty fields were either
// disabled or failed; see Errors.
type Info struct {
	CPU         *CPU             `json:"cpu,omitempty"`
	Memory      *Memory          `json:"memory,omitempty"`
	Motherboard string           `json:"motherboard,omitempty"`
	IP          string           `json:"ip,omitempty"`
	Hostname    string           `json:"hostname,omitempty"`
	Caller      *caller.Info     `json:"caller,omitempty"`
	OS          *OperatingSystem `json:"os,omitempty"`

	Errors map[Section]error `json:"-"`
}

// ErrorStrings returns the section errors as text.
func (i *Info) ErrorStrings() map[Section]string {
	if len(i.Errors) == 0 {
		return nil
	}
	out := make(map[Section]string, len(i.Errors))
	for section, err := range i.Errors {
		out[section] = err.Error()
	}
	return out
}

// Options selects the sections to gather.
type Options struct {
	CPU         bool
	Memory      bool
	Motherboard bool
	IP          bool
	Hostname    bool
	Caller      bool
	OS          bool

	// Resolver resolves the calling shell. Defaults to caller.New().
	Resolver *caller.Resolver
}

// AllSections enables every section.
func AllSections() Options {
	return Options{CPU: true, Memory: true, Motherboard: true, IP: true, Hostname: true, Caller: true, OS: true}
}

// OptionsFrom enables the sections cfg does not omit.
func OptionsFrom(cfg *config.Config, r *caller.Resolver) Options {
	return Options{
		CPU:         !cfg.OmitCPU,
		Memory:      !cfg.OmitRAM,
		Motherboard: !cfg.OmitMotherboard,
		IP:          !cfg.OmitIP,
		Hostname:    !cfg.OmitHostname,
		Caller:      !cfg.OmitCaller,
		// The OS section also picks the art.
		OS:       !cfg.OmitOS || !cfg.OmitArt,
		Resolver: r,
	}
}

// Readers are the per-section data sources; tests swap them out.
type Readers struct {
	CPU         func() (*CPU, error)
	Memory      func() (*Memory, error)
	Motherboard func() (string, error)
	IP          func() (string, error)
	Hostname    func() (string, error)
	Caller      func(*caller.Resolver) (caller.Info, error)
	OS          func() (*OperatingSystem, error)
}

// DefaultReaders returns the platform readers.
func DefaultReaders() Readers {
	return Readers{
		CPU:         ReadCPU,
		Memory:      ReadMemory,
		Motherboard: ReadMotherboard,
		IP:          LocalIP,
		Hostname:    ReadHostname,
		Caller:      caller.Lookup,
		OS:          ReadOS,
	}
}

// Gather reads the enabled sections with the platform readers.
func Gather(ctx context.Context, opts Options) *Info {
	return DefaultReaders().Gather(ctx, opts)
}

// Gather reads the enabled sections concurrently.
func (rd Readers) Gather(ctx context.Context, opts Options) *Info {
	if opts.Resolver == nil {
		opts.Resolver = caller.New()
	}

	info := &Info{Errors: make(map[Section]error)}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	run := func(section Section, enabled bool, read func() (func(), error)) {
		if !enabled {
			return
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				mu.Lock()
				info.Errors[section] = err
				mu.Unlock()
				return nil
			}

			store, err := read()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WithError(err).WithField("section", section).Debug("probe section failed")
				info.Errors[section] = err
				return nil
			}
			store()
			return nil
		})
	}

	run(SectionCPU, opts.CPU, func() (func(), error) {
		cpu, err := rd.CPU()
		return func() { info.CPU = cpu }, err
	})
	run(SectionMemory, opts.Memory, func() (func(), error) {
		mem, err := rd.Memory()
		return func() { info.Memory = mem }, err
	})
	run(SectionMotherboard, opts.Motherboard, func() (func(), error) {
		board, err := rd.Motherboard()
		return func() { info.Motherboard = board }, err
	})
	run(SectionIP, opts.IP, func() (func(), error) {
		ip, err := rd.IP()
		return func() { info.IP = ip }, err
	})
	run(SectionHostname, opts.Hostname, func() (func(), error) {
		name, err := rd.Hostname()
		return func() { info.Hostname = name }, err
	})
	run(SectionCaller, opts.Caller, func() (func(), error) {
		c, err := rd.Caller(opts.Resolver)
		return func() { info.Caller = &c }, err
	})
	run(SectionOS, opts.OS, func() (func(), error) {
		osInfo, err := rd.OS()
		return func() { info.OS = osInfo }, err
	})

	_ = g.Wait() //nolint:errcheck // section errors are kept in info.Errors
	return info
}
