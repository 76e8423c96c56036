// Package attributes evaluates user-defined attribute expressions against a
// probe result.
//
// Expressions use the expr language (github.com/expr-lang/expr) and see:
//
//	cpu       hostinfo.CPU (cpu.Name, cpu.Cores, cpu.Threads, cpu.ClockMHz)
//	memory    hostinfo.Memory (memory.Total, memory.Available, memory.Used)
//	os        hostinfo.OperatingSystem (os.Name, os.Kind, os.Kernel)
//	hostname  string
//	ip        string
//	caller    caller.Info (caller.User, caller.Shell)
//	env       parent process environment, map[string]string
//	args      parent process arguments, []string
//	cmdline   parent process command line, string
//
// Map results expand into one attribute per key ("name.<key>"). A section
// that was omitted or failed is nil; expressions touching it fail at run
// time and are skipped.
package attributes
