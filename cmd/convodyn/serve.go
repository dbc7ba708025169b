package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/convodyn/component"
	"github.com/kbukum/convodyn/config"
	"github.com/kbukum/convodyn/logger"
	"github.com/kbukum/convodyn/observability"
	"github.com/kbukum/convodyn/server"
	"github.com/kbukum/convodyn/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	cfg, err := config.LoadApp(opts...)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	log.Info("starting", logger.Fields(
		"service", cfg.Name,
		"version", version.GetShortVersion(),
		"environment", cfg.Environment,
	))

	registry := component.NewRegistry()

	if cfg.Observability.Enabled {
		if err := registry.Register(newObservabilityComponent(cfg)); err != nil {
			return err
		}
	}

	api, err := server.NewAPI(cfg.Analyzer, nil, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Name, registry.HealthAll)
	api.RegisterRoutes(srv.GinEngine())

	if err := registry.Register(srv); err != nil {
		return err
	}

	if err := registry.StartAll(ctx); err != nil {
		return err
	}

	// Block until interrupted, then stop everything in reverse order.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", logger.Fields("signal", sig.String()))
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return registry.StopAll(stopCtx)
}

// observabilityComponent manages the OpenTelemetry providers as one
// lifecycle unit so traces and metrics flush on shutdown.
type observabilityComponent struct {
	cfg      *config.AppConfig
	shutdown []func(context.Context) error
}

func newObservabilityComponent(cfg *config.AppConfig) *observabilityComponent {
	return &observabilityComponent{cfg: cfg}
}

func (o *observabilityComponent) Name() string { return "observability" }

func (o *observabilityComponent) Start(ctx context.Context) error {
	obs := o.cfg.Observability

	tp, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    o.cfg.Name,
		ServiceVersion: version.GetShortVersion(),
		Environment:    o.cfg.Environment,
		Endpoint:       obs.Endpoint,
		Insecure:       obs.Insecure,
		SampleRate:     obs.SampleRate,
	})
	if err != nil {
		return err
	}
	o.shutdown = append(o.shutdown, tp.Shutdown)

	mp, err := observability.InitMeter(ctx, observability.MeterConfig{
		ServiceName:    o.cfg.Name,
		ServiceVersion: version.GetShortVersion(),
		Environment:    o.cfg.Environment,
		Endpoint:       obs.Endpoint,
		Insecure:       obs.Insecure,
		Interval:       time.Duration(obs.IntervalSeconds) * time.Second,
	})
	if err != nil {
		return err
	}
	o.shutdown = append(o.shutdown, mp.Shutdown)
	return nil
}

func (o *observabilityComponent) Stop(ctx context.Context) error {
	var firstErr error
	for i := len(o.shutdown) - 1; i >= 0; i-- {
		if err := o.shutdown[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	o.shutdown = nil
	return firstErr
}

func (o *observabilityComponent) Health(ctx context.Context) component.Health {
	status := component.StatusHealthy
	if len(o.shutdown) == 0 {
		status = component.StatusDegraded
	}
	return component.Health{Name: o.Name(), Status: status}
}
