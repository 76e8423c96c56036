package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/log"
	"github.com/mrzor/rinfo/internal/metrics"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "export the probe as Prometheus metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Value: ":9100", Usage: "address to serve /metrics and /healthz on"},
			&cli.DurationFlag{Name: "interval", Value: 15 * time.Second, Usage: "probe refresh interval"},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver := caller.New()
	collector, err := metrics.NewCollector(metrics.Config{
		Interval: c.Duration("interval"),
		Gather: func(ctx context.Context) *hostinfo.Info {
			opts := hostinfo.AllSections()
			opts.Resolver = resolver
			return hostinfo.Gather(ctx, opts)
		},
	})
	if err != nil {
		return err
	}

	server := metrics.NewServer(c.String("listen"), collector)

	g, gctx := errgroup.WithContext(ctx)
	collector.Start(gctx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	collector.Stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
