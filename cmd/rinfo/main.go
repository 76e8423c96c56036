// rinfo prints a short description of the host and of the shell that
// invoked it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/mrzor/rinfo/internal/log"
)

// Version information injected by GoReleaser at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Aliases: []string{"V"}, Usage: "print the version"}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "rinfo",
		Usage:     "Get information about your system",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     probeFlags(),
		Before: func(c *cli.Context) error {
			log.SetOutput(stderr)
			log.SetLevel(c.String("log-level"))
			log.SetJSON(c.Bool("log-json"))
			return nil
		},
		Action: probeAction,
		// Exit codes are handled by main so tests can observe them.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			callerCommand(),
			serveCommand(),
		},
	}
}
