package timesync

import (
	"fmt"
	"time"
)

// Converter answers uptime questions relative to a fixed boot time.
type Converter struct {
	bootTime time.Time
}

// NewConverter creates a converter from the system boot time.
func NewConverter() (*Converter, error) {
	bootTime, err := systemBootTime()
	if err != nil {
		return nil, fmt.Errorf("reading system boot time: %w", err)
	}
	return &Converter{bootTime: bootTime}, nil
}

// BootTime returns the system boot time.
func (c *Converter) BootTime() time.Time {
	return c.bootTime
}

// UptimeAt returns how long the system had been up at now.
// Times before boot yield zero.
func (c *Converter) UptimeAt(now time.Time) time.Duration {
	if now.Before(c.bootTime) {
		return 0
	}
	return now.Sub(c.bootTime)
}

// Uptime returns the current system uptime.
func Uptime() (time.Duration, error) {
	c, err := NewConverter()
	if err != nil {
		return 0, err
	}
	return c.UptimeAt(time.Now()), nil
}
