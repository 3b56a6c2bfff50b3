package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"centreg/internal/audit"
	auditkafka "centreg/internal/audit/kafka"
	"centreg/internal/management/handler"
	mgmtmetrics "centreg/internal/management/metrics"
	"centreg/internal/management/service"
	"centreg/internal/management/store"
	"centreg/internal/platform/config"
	"centreg/internal/platform/httpserver"
	"centreg/internal/platform/logger"
	"centreg/internal/platform/middleware"
	platformredis "centreg/internal/platform/redis"
	"centreg/internal/registry"
)

// main wires the process together: storage, optional cache and audit sinks,
// the management service and the HTTP surface. Business logic lives in the
// internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	var (
		mgmtStore service.ProcessingStore
		reg       service.Registry
		groups    service.GroupStore
		health    func(context.Context) error
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return err
		}
		pg := registry.NewPostgres(db)
		mgmtStore = store.NewPostgres(db)
		reg, groups = pg, pg
		health = db.PingContext
		log.Info("using postgres storage")
	} else {
		mem := registry.NewMemoryStore()
		mgmtStore = store.NewMemoryStore()
		reg, groups = mem, mem
		health = func(context.Context) error { return nil }
		log.Warn("no database configured, using in-memory storage")
	}

	metrics := mgmtmetrics.New()
	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(metrics),
	}

	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		opts = append(opts, service.WithDecisionCache(store.NewRedisDecisionCache(rdb.Client, 24*time.Hour)))
		log.Info("decision cache enabled")
	}

	var publisher service.AuditPublisher = audit.NewLogPublisher(log)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := auditkafka.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			return err
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("audit events published to kafka", "topic", cfg.Kafka.AuditTopic)
	}
	opts = append(opts, service.WithAuditPublisher(publisher))

	svc := service.New(mgmtStore, reg, groups, opts...)
	mgmtHandler := handler.New(svc, log)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	mgmtHandler.Register(router)
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireOperator(middleware.NewHMACValidator(cfg.JWTSigningKey), log))
		mgmtHandler.RegisterOperator(r)
	})

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := health(r.Context()); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting centreg", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
