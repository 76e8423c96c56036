package timesync

import (
	"testing"
	"time"
)

func TestConverter_UptimeAt(t *testing.T) {
	bootTime := time.Unix(1000000000, 0) // 2001-09-09 01:46:40 UTC
	converter := &Converter{
		bootTime: bootTime,
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "at boot",
			now:  bootTime,
			want: 0,
		},
		{
			name: "one hour",
			now:  bootTime.Add(time.Hour),
			want: time.Hour,
		},
		{
			name: "mixed time",
			now:  bootTime.Add(123*time.Second + 456*time.Millisecond),
			want: 123*time.Second + 456*time.Millisecond,
		},
		{
			name: "clock before boot",
			now:  bootTime.Add(-time.Minute),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := converter.UptimeAt(tt.now); got != tt.want {
				t.Errorf("UptimeAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConverter_BootTime(t *testing.T) {
	bootTime := time.Unix(1000000000, 0)
	converter := &Converter{
		bootTime: bootTime,
	}

	if got := converter.BootTime(); !got.Equal(bootTime) {
		t.Errorf("BootTime() = %v, want %v", got, bootTime)
	}
}

func TestNewConverter(t *testing.T) {
	converter, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	bootTime := converter.BootTime()
	if bootTime.IsZero() {
		t.Error("BootTime() is zero")
	}
	if bootTime.After(time.Now()) {
		t.Error("BootTime() is in the future")
	}
}

func TestUptime(t *testing.T) {
	uptime, err := Uptime()
	if err != nil {
		t.Fatalf("Uptime() error = %v", err)
	}
	if uptime <= 0 {
		t.Errorf("Uptime() = %v, want > 0", uptime)
	}
}
