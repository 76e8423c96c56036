package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/procmeta"
)

// JSONFormatter writes the report as a single JSON object.
type JSONFormatter struct {
	Indent bool
}

type jsonReport struct {
	*hostinfo.Info
	Process    *procmeta.ProcessMetadata   `json:"process,omitempty"`
	Errors     map[hostinfo.Section]string `json:"errors,omitempty"`
	Attributes map[string]any              `json:"attributes,omitempty"`
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, r *Report) error {
	doc := jsonReport{Info: r.Info, Process: r.Process}
	if doc.Info == nil {
		doc.Info = &hostinfo.Info{}
	}
	doc.Errors = doc.Info.ErrorStrings()

	if len(r.Attributes) > 0 {
		doc.Attributes = make(map[string]any, len(r.Attributes))
		for _, kv := range r.Attributes {
			doc.Attributes[string(kv.Key)] = kv.Value.AsInterface()
		}
	}

	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
