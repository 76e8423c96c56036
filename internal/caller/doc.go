// Package caller resolves the short invocation name of a running process and
// describes the user and shell that invoked rinfo.
//
// The kernel hands out a process's arguments as one raw blob:
//
//	┌────────────────┬─────┬──────────┬──────────────┬─────┬──────────────┐
//	│ leading region │ NUL │ NUL pad… │ argv[0] path │ NUL │ rest (argv,  │
//	│ (exec path)    │     │          │              │     │ environment) │
//	└────────────────┴─────┴──────────┴──────────────┴─────┴──────────────┘
//
// Resolver fetches that blob through an ArgsSource, locates argv[0] and
// copies everything after its last '/' into a caller-supplied buffer,
// NUL-terminated. The name either fits entirely or nothing is written.
//
// Sources are picked at compile time:
//   - darwin: kern.argmax + kern.procargs sysctls
//   - linux: /proc/<pid>/exe and /proc/<pid>/cmdline, laid out the same way
//   - anything else: none, every call fails with ErrUnsupportedPlatform
//
// Failures are reported through sentinel errors (ErrQueryLimit,
// ErrProcessLookup, ErrMalformedArgs, ErrEmptyName, ErrBufferTooSmall)
// matched with errors.Is. ResolveCallerName maps them onto the 0/-1/-2
// status codes used by C-style callers.
package caller
