// Package procmeta collects the arguments and environment of a process for
// expression evaluation.
//
// On Linux the data comes from /proc/<pid>/cmdline and /proc/<pid>/environ.
// Elsewhere only the short name from the caller resolver is available.
package procmeta
