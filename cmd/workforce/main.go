// Package main is the entry point for the workforce command. It wires all
// dependencies using samber/do v2, restores departments kept in the roster
// store, applies a roster document, and exports the resulting payroll.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/workforce/internal/adapters/export"
	"github.com/jsamuelsen11/workforce/internal/adapters/rosterfile"
	"github.com/jsamuelsen11/workforce/internal/adapters/store"
	"github.com/jsamuelsen11/workforce/internal/app"
	"github.com/jsamuelsen11/workforce/internal/domain/org"
	"github.com/jsamuelsen11/workforce/internal/platform/config"
	"github.com/jsamuelsen11/workforce/internal/platform/health"
	"github.com/jsamuelsen11/workforce/internal/platform/logging"
	"github.com/jsamuelsen11/workforce/internal/platform/telemetry"
	"github.com/jsamuelsen11/workforce/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rosterPath := flag.String("roster", "", "roster document to apply (overrides roster.path)")
	xlsxPath := flag.String("xlsx", "", "write the payroll workbook here (overrides report.xlsx_path)")
	skipRoster := flag.Bool("no-roster", false, "only restore stored departments and report payroll")
	flag.Parse()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *rosterPath != "" {
		cfg.Roster.Path = *rosterPath
	}
	if *skipRoster {
		cfg.Roster.Path = ""
	}
	if *xlsxPath != "" {
		cfg.Report.XLSXPath = *xlsxPath
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Refuse to run against an unreachable store.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if cfg.Store.Persistent() {
		conn, err := do.Invoke[*store.Connection](injector)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error("store close error", slog.Any("error", err))
			}
		}()
		registry.Register(conn)
	}
	if err := registry.Ready(ctx); err != nil {
		return err
	}

	svc, err := do.Invoke[*app.WorkforceService](injector)
	if err != nil {
		return fmt.Errorf("resolving workforce service: %w", err)
	}

	if err := restoreDepartments(ctx, injector, svc); err != nil {
		return err
	}

	if cfg.Roster.Path != "" {
		plan, err := rosterfile.Load(cfg.Roster.Path)
		if err != nil {
			return err
		}
		if err := svc.ApplyRoster(ctx, plan); err != nil {
			return fmt.Errorf("applying roster: %w", err)
		}
	}

	report, err := svc.Payroll(ctx)
	if err != nil {
		return fmt.Errorf("computing payroll: %w", err)
	}
	if err := svc.ExportPayroll(ctx, report); err != nil {
		return err
	}

	provider := do.MustInvoke[*store.Provider](injector)
	if err := provider.Flush(ctx); err != nil {
		return fmt.Errorf("saving roster: %w", err)
	}

	logger.InfoContext(ctx, "payroll complete",
		slog.String("run_id", report.RunID),
		slog.Int("headcount", report.Headcount),
	)
	return nil
}

// restoreDepartments reopens every department kept in a persistent store so
// its employees are back on the company before the roster is applied.
func restoreDepartments(ctx context.Context, injector do.Injector, svc *app.WorkforceService) error {
	provider := do.MustInvoke[*store.Provider](injector)
	if !provider.Persistent() {
		return nil
	}

	conn := do.MustInvoke[*store.Connection](injector)
	scopes, err := conn.Scopes(ctx)
	if err != nil {
		return err
	}
	for _, scope := range scopes {
		name, ok := app.DepartmentFromScope(scope)
		if !ok {
			continue
		}
		if err := svc.OpenDepartment(ctx, name); err != nil {
			return fmt.Errorf("restoring department %q: %w", name, err)
		}
	}
	return nil
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

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
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

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*store.Connection, error) {
		logger.InfoContext(ctx, "opening store",
			slog.String("driver", cfg.Store.Driver),
			slog.String("dsn", cfg.Store.DSN),
		)
		return store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	})

	do.Provide(injector, func(i do.Injector) (*store.Provider, error) {
		if !cfg.Store.Persistent() {
			return store.NewProvider(nil), nil
		}
		conn, err := do.Invoke[*store.Connection](i)
		if err != nil {
			return nil, err
		}
		return store.NewProvider(conn), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) ([]ports.ReportExporter, error) {
		exporters := []ports.ReportExporter{export.NewTextExporter(os.Stdout)}
		if cfg.Report.XLSXPath != "" {
			exporters = append(exporters, export.NewXLSXExporter(cfg.Report.XLSXPath))
		}
		return exporters, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.WorkforceService, error) {
		company, err := org.NewCompany(cfg.Roster.Company)
		if err != nil {
			return nil, err
		}
		provider := do.MustInvoke[*store.Provider](i)
		exporters := do.MustInvoke[[]ports.ReportExporter](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewWorkforceService(company, provider, logger,
			app.WithExporters(exporters...),
			app.WithMetrics(metrics),
		), nil
	})
}
