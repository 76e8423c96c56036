package output

import (
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mrzor/rinfo/internal/config"
	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/procmeta"
)

// Report is one probe ready for output.
type Report struct {
	Info       *hostinfo.Info
	Process    *procmeta.ProcessMetadata
	Attributes []attribute.KeyValue
}

// Formatter writes a report.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// New returns the formatter selected by cfg.Format.
func New(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "", config.FormatText:
		return &TextFormatter{
			OmitOS:      cfg.OmitOS,
			OmitArt:     cfg.OmitArt,
			VerticalArt: cfg.VerticalArt,
		}, nil
	case config.FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}
