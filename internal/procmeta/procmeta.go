package procmeta

import (
	"path/filepath"
	"strings"

	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/log"
)

// ProcessMetadata holds structured process information for expression evaluation.
type ProcessMetadata struct {
	Pid         int               `json:"pid"`
	Name        string            `json:"name"`
	Environ     map[string]string `json:"-"`
	Args        []string          `json:"args,omitempty"`
	CmdlineFull string            `json:"cmdline,omitempty"`
}

// Collect gathers the metadata of pid. The short name comes from r; args
// and environment are best effort and left empty when unreadable.
func Collect(pid int, r *caller.Resolver) *ProcessMetadata {
	return collect(pid, r, readProcess)
}

// processReader returns the raw argv and KEY=VALUE environment of pid.
type processReader func(pid int) (args, environ []string, err error)

func collect(pid int, r *caller.Resolver, read processReader) *ProcessMetadata {
	meta := &ProcessMetadata{Pid: pid}

	rawArgs, rawEnv, err := read(pid)
	if err != nil {
		log.WithError(err).WithField("pid", pid).Debug("reading process metadata")
	}
	meta.Args, meta.CmdlineFull = parseCmdline(rawArgs)
	meta.Environ = parseEnviron(rawEnv)

	name, err := r.Resolve(pid)
	if err != nil {
		log.WithError(err).WithField("pid", pid).Debug("resolving process name")
		if len(meta.Args) > 0 {
			name = filepath.Base(meta.Args[0])
		}
	}
	meta.Name = name
	return meta
}

// parseEnviron turns KEY=VALUE entries into a map. Entries without a key
// are dropped and the last duplicate wins.
func parseEnviron(raw []string) map[string]string {
	env := make(map[string]string, len(raw))
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

func parseCmdline(raw []string) ([]string, string) {
	if len(raw) == 0 {
		return nil, ""
	}
	args := make([]string, len(raw))
	copy(args, raw)
	return args, strings.Join(args, " ")
}
