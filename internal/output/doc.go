// Package output renders a probe Report.
//
// Formatters:
//   - TextFormatter: "Key: value" lines beside, above, or without the OS logo
//   - JSONFormatter: the report as one JSON document
//
// EmitSpan records the report as a single OpenTelemetry span.
package output
