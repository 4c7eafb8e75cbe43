package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"brewfather-mcp/config"
	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/logging"
	"brewfather-mcp/internal/recipe"
	"brewfather-mcp/internal/report"
	"brewfather-mcp/internal/tools"
)

// app is everything a command needs, wired from the config.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	registry *prometheus.Registry
	handler  *tools.Handler
	closer   io.Closer
}

func (a *app) Close() error {
	return a.closer.Close()
}

// newApp loads the config and builds the logger. With withClient set the Brewfather
// client is created too, which requires credentials.
func newApp(cmd *cli.Command, withClient bool) (*app, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closer: closer}

	loc, err := cfg.Location()
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	builder := recipe.NewBuilder(logger)
	renderer := report.New(loc)

	if !withClient {
		a.handler = tools.NewHandler(nil, renderer, builder, logger)
		return a, nil
	}

	if err := cfg.Validate(); err != nil {
		_ = closer.Close()
		return nil, err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client, err := brewfather.New(cfg,
		brewfather.WithLogger(logger),
		brewfather.WithMetrics(brewfather.NewMetrics(a.registry)),
	)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	a.handler = tools.NewHandler(client, renderer, builder, logger)

	logger.WithFields(logrus.Fields{
		"base_url": cfg.API.BaseURL,
		"debug":    cfg.Debug.Enabled,
		"version":  tools.Version,
	}).Info("brewfather client configured")

	return a, nil
}
