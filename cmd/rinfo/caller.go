package main

import (
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v2"

	"github.com/mrzor/rinfo/internal/caller"
)

// Exit statuses of the caller command.
const (
	exitFailed      = 1
	exitBufferSmall = 2
)

func callerCommand() *cli.Command {
	return &cli.Command{
		Name:      "caller",
		Usage:     "print the short invocation name of a process",
		ArgsUsage: "[pid]",
		Description: `Resolves argv[0] of the process (default: the parent of rinfo) and
prints the part after its last '/'. The name is resolved into a fixed
buffer of --buffer-size bytes; a name that does not fit, with its NUL
terminator, exits with status 2. Any other failure exits with status 1.`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "buffer-size", Value: 256, Usage: "capacity of the name buffer in bytes, terminator included"},
		},
		Action: callerAction,
	}
}

func callerAction(c *cli.Context) error {
	pid := os.Getppid()
	if c.Args().Len() > 1 {
		return cli.Exit("usage: rinfo caller [pid]", exitFailed)
	}
	if arg := c.Args().First(); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return cli.Exit(fmt.Sprintf("invalid pid %q", arg), exitFailed)
		}
		pid = n
	}

	size := c.Int("buffer-size")
	if size < 0 {
		return cli.Exit(fmt.Sprintf("invalid buffer size %d", size), exitFailed)
	}

	buf := make([]byte, size)
	n, err := caller.New().ResolveInto(pid, buf)
	switch caller.Code(err) {
	case caller.StatusOK:
		_, err = fmt.Fprintln(c.App.Writer, string(buf[:n]))
		return err
	case caller.StatusBufferSmall:
		return cli.Exit(err.Error(), exitBufferSmall)
	default:
		return cli.Exit(err.Error(), exitFailed)
	}
}
