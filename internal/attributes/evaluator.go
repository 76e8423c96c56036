package attributes

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/config"
	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/log"
	"github.com/mrzor/rinfo/internal/procmeta"
)

// Env is the environment expressions are evaluated against.
type Env struct {
	CPU      *hostinfo.CPU             `expr:"cpu"`
	Memory   *hostinfo.Memory          `expr:"memory"`
	OS       *hostinfo.OperatingSystem `expr:"os"`
	Hostname string                    `expr:"hostname"`
	IP       string                    `expr:"ip"`
	Caller   *caller.Info              `expr:"caller"`
	Env      map[string]string         `expr:"env"`
	Args     []string                  `expr:"args"`
	Cmdline  string                    `expr:"cmdline"`
}

// NewEnv builds an evaluation environment. Either argument may be nil.
func NewEnv(info *hostinfo.Info, meta *procmeta.ProcessMetadata) *Env {
	env := &Env{Env: map[string]string{}, Args: []string{}}
	if info != nil {
		env.CPU = info.CPU
		env.Memory = info.Memory
		env.OS = info.OS
		env.Hostname = info.Hostname
		env.IP = info.IP
		env.Caller = info.Caller
	}
	if meta != nil {
		if meta.Environ != nil {
			env.Env = meta.Environ
		}
		if meta.Args != nil {
			env.Args = meta.Args
		}
		env.Cmdline = meta.CmdlineFull
	}
	return env
}

// Evaluator handles compilation and evaluation of custom attribute expressions.
type Evaluator struct {
	customAttrs   []config.CustomAttribute
	compiledExprs []*vm.Program
}

// NewEvaluator creates a new attribute evaluator.
// It pre-compiles all custom attribute expressions for efficiency.
func NewEvaluator(customAttrs []config.CustomAttribute) (*Evaluator, error) {
	compiledExprs := make([]*vm.Program, len(customAttrs))
	for i, attr := range customAttrs {
		program, err := expr.Compile(attr.Expression, expr.Env(Env{}))
		if err != nil {
			return nil, fmt.Errorf("failed to compile expression for attribute %q: %w", attr.Name, err)
		}
		compiledExprs[i] = program
	}

	return &Evaluator{
		customAttrs:   customAttrs,
		compiledExprs: compiledExprs,
	}, nil
}

// Len returns the number of configured attributes.
func (e *Evaluator) Len() int {
	return len(e.customAttrs)
}

// EvaluateCustomAttributes runs every expression against env, in
// configuration order. Failing expressions are logged and skipped.
func (e *Evaluator) EvaluateCustomAttributes(env *Env) []attribute.KeyValue {
	if len(e.customAttrs) == 0 || env == nil {
		return nil
	}

	var attrs []attribute.KeyValue
	for i, customAttr := range e.customAttrs {
		output, err := expr.Run(e.compiledExprs[i], env)
		if err != nil {
			log.WithError(err).WithField("attribute", customAttr.Name).Warn("failed to evaluate attribute expression")
			continue
		}

		outputValue := reflect.ValueOf(output)
		if outputValue.Kind() != reflect.Map {
			attrs = append(attrs, keyValue(customAttr.Name, output))
			continue
		}

		// Expand maps into one attribute per key, sorted for stable output.
		type entry struct {
			name  string
			value reflect.Value
		}
		entries := make([]entry, 0, outputValue.Len())
		for _, key := range outputValue.MapKeys() {
			entries = append(entries, entry{fmt.Sprint(key.Interface()), outputValue.MapIndex(key)})
		}
		slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.name, b.name) })

		for _, ent := range entries {
			attrName := customAttr.Name + "." + sanitizeAttributeName(ent.name)
			attrs = append(attrs, keyValue(attrName, ent.value.Interface()))
		}
	}

	return attrs
}

// keyValue keeps booleans and numbers typed; everything else is formatted
// with %v.
func keyValue(name string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(name, v)
	case bool:
		return attribute.Bool(name, v)
	case int:
		return attribute.Int(name, v)
	case int64:
		return attribute.Int64(name, v)
	case uint64:
		if v <= 1<<63-1 {
			return attribute.Int64(name, int64(v))
		}
	case float64:
		return attribute.Float64(name, v)
	}
	return attribute.String(name, fmt.Sprintf("%v", value))
}

// sanitizeAttributeName replaces non-alphanumeric characters with underscores.
// This ensures attribute names are safe for OpenTelemetry.
func sanitizeAttributeName(name string) string {
	result := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			result[i] = c
		} else {
			result[i] = '_'
		}
	}
	return string(result)
}
