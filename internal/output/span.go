package output

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// SpanName is the name of the span EmitSpan records.
const SpanName = "rinfo.probe"

// SpanAttributes converts a report into span attributes. Host and process
// fields use semantic convention keys; the rest live under "rinfo.".
func SpanAttributes(r *Report) []attribute.KeyValue {
	var attrs []attribute.KeyValue

	if info := r.Info; info != nil {
		if cpu := info.CPU; cpu != nil {
			attrs = append(attrs,
				attribute.String("rinfo.cpu.name", cpu.Name),
				attribute.Int("rinfo.cpu.cores", cpu.Cores),
				attribute.Int("rinfo.cpu.threads", cpu.Threads),
				//nolint:gosec // clock rates fit in int64
				attribute.Int64("rinfo.cpu.frequency_mhz", int64(cpu.ClockMHz)),
				attribute.Float64("rinfo.uptime_s", cpu.Uptime.Seconds()),
			)
		}
		if mem := info.Memory; mem != nil {
			//nolint:gosec // memory sizes fit in int64
			attrs = append(attrs,
				attribute.Int64("rinfo.memory.total_bytes", int64(mem.Total)),
				attribute.Int64("rinfo.memory.available_bytes", int64(mem.Available)),
				attribute.Int64("rinfo.memory.used_bytes", int64(mem.Used)),
			)
		}
		if info.Motherboard != "" {
			attrs = append(attrs, attribute.String("rinfo.motherboard", info.Motherboard))
		}
		if info.IP != "" {
			attrs = append(attrs, attribute.String("rinfo.ip", info.IP))
		}
		if info.Hostname != "" {
			attrs = append(attrs, semconv.HostName(info.Hostname))
		}
		if c := info.Caller; c != nil {
			attrs = append(attrs,
				semconv.ProcessOwner(c.User),
				attribute.String("rinfo.caller.shell", c.Shell),
			)
		}
		if osInfo := info.OS; osInfo != nil {
			attrs = append(attrs, semconv.OSDescription(osInfo.Name))
			if osInfo.Kernel != "" {
				attrs = append(attrs, attribute.String("rinfo.os.kernel", osInfo.Kernel))
			}
			if osInfo.Version != "" {
				attrs = append(attrs, semconv.OSVersion(osInfo.Version))
			}
		}
	}

	if p := r.Process; p != nil {
		attrs = append(attrs, semconv.ProcessParentPID(p.Pid))
		if p.Name != "" {
			attrs = append(attrs, attribute.String("rinfo.parent.name", p.Name))
		}
		if p.CmdlineFull != "" {
			attrs = append(attrs, attribute.String("rinfo.parent.command_line", p.CmdlineFull))
		}
	}

	return append(attrs, r.Attributes...)
}

// EmitSpan records r as one span on tracer and returns its context.
// Failed sections are attached as "rinfo.error.<section>" and mark the
// span as errored.
func EmitSpan(ctx context.Context, tracer trace.Tracer, r *Report) trace.SpanContext {
	_, span := tracer.Start(ctx, SpanName, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	span.SetAttributes(SpanAttributes(r)...)

	var failed []string
	if r.Info != nil {
		for section, msg := range r.Info.ErrorStrings() {
			failed = append(failed, string(section))
			span.SetAttributes(attribute.String("rinfo.error."+string(section), msg))
		}
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		span.SetStatus(codes.Error, fmt.Sprintf("failed sections: %s", strings.Join(failed, ", ")))
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return span.SpanContext()
}
