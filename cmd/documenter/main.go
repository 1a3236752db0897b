// Package main is the entry point for the documenter CLI. It bootstraps
// telemetry, wires dependencies using samber/do v2, and hands control to the
// cobra command tree. Ctrl-C cancels the command context.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/documenter/internal/adapters/cli"
	"github.com/jsamuelsen11/documenter/internal/platform/config"
	"github.com/jsamuelsen11/documenter/internal/platform/health"
	"github.com/jsamuelsen11/documenter/internal/platform/telemetry"
	"github.com/jsamuelsen11/documenter/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serviceName         = "documenter"
	otelShutdownTimeout = 5 * time.Second

	// envTelemetry selects the exporter: unset disables telemetry,
	// "stdout" writes to stderr, "otlp" sends to envOTLPEndpoint.
	envTelemetry    = "DOCUMENTER_TELEMETRY"
	envOTLPEndpoint = "DOCUMENTER_OTLP_ENDPOINT"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, os.Getenv(envTelemetry), os.Getenv(envOTLPEndpoint))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			fmt.Fprintf(os.Stderr, "telemetry shutdown error: %v\n", err)
		}
	}()

	root := cli.NewRootCommand(func(_ context.Context, logger *slog.Logger) (*cli.Dependencies, error) {
		return wire(logger, otel.metrics)
	})
	return root.ExecuteContext(ctx)
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, exporter, endpoint string) (*otelProviders, error) {
	if exporter == "" {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, serviceName, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, serviceName, exporter, endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// wire builds the DI container and resolves the command dependencies.
func wire(logger *slog.Logger, metrics *telemetry.Metrics) (*cli.Dependencies, error) {
	injector := do.New()

	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerDependencies(injector)

	manager, err := do.Invoke[ports.ConfigManager](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving config manager: %w", err)
	}
	registry, err := do.Invoke[ports.HealthRegistry](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving health registry: %w", err)
	}

	return &cli.Dependencies{Manager: manager, Registry: registry}, nil
}

func registerDependencies(injector *do.RootScope) {
	do.Provide(injector, func(i do.Injector) (*config.Manager, error) {
		return config.NewManager(
			config.WithLogger(do.MustInvoke[*slog.Logger](i)),
			config.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ConfigManager, error) {
		return do.MustInvoke[*config.Manager](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		manager := do.MustInvoke[ports.ConfigManager](i)

		registry := health.New()
		for _, p := range config.Providers {
			registry.Register(health.NewProviderChecker(manager, p))
		}
		registry.Register(health.NewOutputDirChecker(manager))
		return registry, nil
	})
}
