package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/tasktory/internal/cli"
	"github.com/alexanderramin/tasktory/internal/config"
	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/logging"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/alexanderramin/tasktory/internal/service"
	"github.com/alexanderramin/tasktory/internal/settings"
	"github.com/alexanderramin/tasktory/internal/tracing"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := settings.NewStore(cfg.SettingsPath)
	prefs, err := store.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if level == "" {
		level = prefs.System.LogLevel
	}
	logs, err := logging.New(level, cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logs.Closer()
	logger := logs.Base.With(zap.String("env", cfg.Env))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database ready", zap.String("path", cfg.DBPath))

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		ServiceName: "tasktory",
		Endpoint:    cfg.OTelEndpoint,
		File:        cfg.TraceFile,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		// The run context may already be cancelled by a signal.
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flushing traces", zap.Error(err))
		}
	}()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	teamRepo := repository.NewSQLiteTeamMemberRepo(database)
	memberRepo := repository.NewSQLiteProjectMemberRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	registry := prometheus.NewRegistry()
	metrics, err := service.NewMetricsObserver(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observers := []service.UseCaseObserver{
		metrics,
		service.NewTracingObserver(otel.GetTracerProvider()),
	}
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}
	if cfg.MetricsFile != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
				logger.Warn("writing metrics file", zap.String("path", cfg.MetricsFile), zap.Error(err))
			}
		}()
	}

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo),
		Team:        service.NewTeamService(teamRepo, uow, observers...),
		Assignments: service.NewAssignmentService(projectRepo, teamRepo, memberRepo, uow, observers...),
		Templates:   service.NewTemplateService(templateRepo, uow, observers...),
		Status:      service.NewStatusService(projectRepo, teamRepo, memberRepo),
		Settings:    store,
	}

	// Detect an interactive terminal for the assignment form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
