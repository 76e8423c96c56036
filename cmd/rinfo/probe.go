package main

import (
	"context"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/mrzor/rinfo/internal/attributes"
	"github.com/mrzor/rinfo/internal/caller"
	"github.com/mrzor/rinfo/internal/config"
	"github.com/mrzor/rinfo/internal/hostinfo"
	"github.com/mrzor/rinfo/internal/log"
	"github.com/mrzor/rinfo/internal/otel"
	"github.com/mrzor/rinfo/internal/output"
	"github.com/mrzor/rinfo/internal/procmeta"
)

func probeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "omit-cpu", Aliases: []string{"c"}, Usage: "don't print CPU information"},
		&cli.BoolFlag{Name: "omit-ram", Aliases: []string{"r"}, Usage: "don't print RAM information"},
		&cli.BoolFlag{Name: "omit-motherboard", Aliases: []string{"m"}, Usage: "don't print motherboard information"},
		&cli.BoolFlag{Name: "omit-caller", Aliases: []string{"p"}, Usage: "don't print caller (USER, SHELL) information"},
		&cli.BoolFlag{Name: "omit-hostname", Aliases: []string{"n"}, Usage: "don't print the system hostname"},
		&cli.BoolFlag{Name: "omit-os", Aliases: []string{"o"}, Usage: "don't print operating system information"},
		&cli.BoolFlag{Name: "omit-art", Aliases: []string{"a"}, Usage: "don't print character art"},
		&cli.BoolFlag{Name: "omit-ip", Aliases: []string{"i"}, Usage: "don't print local IP address"},
		&cli.BoolFlag{Name: "vertical-art", Aliases: []string{"v"}, Usage: "print character art above information"},
		&cli.StringFlag{Name: "format", Usage: "output format: text or json"},
		&cli.StringSliceFlag{Name: "attr", Usage: "extra attribute as name=expression (repeatable)"},
		&cli.BoolFlag{Name: "export", Usage: "export the probe as an OTLP span (configured with OTEL_* variables)"},
		&cli.StringFlag{Name: "config", Usage: "config file (default: <user config dir>/rinfo/config.yaml)"},
		&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level: debug, info, warn, error"},
		&cli.BoolFlag{Name: "log-json", Usage: "write logs as JSON"},
	}
}

// flagConfig returns the settings given on the command line.
func flagConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{
		OmitCPU:         c.Bool("omit-cpu"),
		OmitRAM:         c.Bool("omit-ram"),
		OmitMotherboard: c.Bool("omit-motherboard"),
		OmitCaller:      c.Bool("omit-caller"),
		OmitHostname:    c.Bool("omit-hostname"),
		OmitOS:          c.Bool("omit-os"),
		OmitArt:         c.Bool("omit-art"),
		OmitIP:          c.Bool("omit-ip"),
		VerticalArt:     c.Bool("vertical-art"),
		Format:          c.String("format"),
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	for _, s := range c.StringSlice("attr") {
		attr, err := config.ParseCustomAttribute(s)
		if err != nil {
			return nil, err
		}
		cfg.CustomAttributes = append(cfg.CustomAttributes, attr)
	}
	return cfg, nil
}

// loadConfig merges defaults, the config file, RINFO_* variables and flags,
// in increasing priority.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	path := c.String("config")
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.WithError(err).Debug("no default config file")
		}
	}
	if path != "" {
		fileCfg, err := config.LoadFile(path)
		switch {
		case err != nil && explicit:
			return nil, err
		case err != nil:
			log.WithError(err).Warn("ignoring config file")
		default:
			cfg.Combine(fileCfg)
		}
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Combine(envCfg)

	flags, err := flagConfig(c)
	if err != nil {
		return nil, err
	}
	cfg.Combine(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func probeAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	evaluator, err := attributes.NewEvaluator(cfg.CustomAttributes)
	if err != nil {
		return err
	}
	formatter, err := output.New(cfg)
	if err != nil {
		return err
	}

	resolver := caller.New()
	info := hostinfo.Gather(c.Context, hostinfo.OptionsFrom(cfg, resolver))

	report := &output.Report{Info: info}
	export := c.Bool("export")
	if evaluator.Len() > 0 || export {
		report.Process = procmeta.Collect(os.Getppid(), resolver)
	}
	report.Attributes = evaluator.EvaluateCustomAttributes(attributes.NewEnv(info, report.Process))

	if export {
		if err := exportReport(c.Context, report); err != nil {
			return err
		}
	}

	return formatter.Format(c.App.Writer, report)
}

// exportReport sends report as one span to the OTLP endpoint.
func exportReport(ctx context.Context, report *output.Report) error {
	otelCfg, err := config.ParseOTELConfig()
	if err != nil {
		return err
	}

	tp, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		return fmt.Errorf("initializing OTEL provider: %w", err)
	}

	sc := output.EmitSpan(ctx, tp.Tracer(otel.TracerName), report)
	log.WithField("trace_id", sc.TraceID().String()).Info("exported probe span")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), otelCfg.Timeout+5*time.Second)
	defer cancel()
	return otel.ShutdownProvider(shutdownCtx, tp)
}
