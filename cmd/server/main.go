package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"truadboon/internal/blacklist"
	blacklisthandler "truadboon/internal/blacklist/handler"
	blackliststore "truadboon/internal/blacklist/store"
	"truadboon/internal/foundation"
	foundationhandler "truadboon/internal/foundation/handler"
	foundationstore "truadboon/internal/foundation/store"
	"truadboon/internal/platform/config"
	"truadboon/internal/platform/httpserver"
	"truadboon/internal/platform/logger"
	"truadboon/internal/platform/postgres"
	"truadboon/internal/platform/redis"
	httptransport "truadboon/internal/transport/http"
	"truadboon/internal/verification"
	verificationhandler "truadboon/internal/verification/handler"
	"truadboon/internal/verification/metrics"
	"truadboon/internal/verifylog"
	verifyloghandler "truadboon/internal/verifylog/handler"
	verifylogstore "truadboon/internal/verifylog/store"
)

// main wires dependencies and owns the process lifecycle. With an empty
// environment the service boots on in-memory stores seeded with the bundled
// registry data, which keeps local development a one-command affair.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		foundationStore foundation.Store
		blacklistStore  blacklist.Store
		logStore        verifylog.Store
	)
	health := map[string]httptransport.HealthCheck{}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		foundationStore = foundationstore.NewPostgres(db)
		blacklistStore = blackliststore.NewPostgres(db)
		logStore = verifylogstore.NewPostgres(db)
		health["postgres"] = db.PingContext
		log.Info("using postgres stores")
	} else {
		fs := foundationstore.NewInMemory()
		bs := blackliststore.NewInMemory()
		if err := foundationstore.SeedFoundations(ctx, fs); err != nil {
			log.Error("foundation seed failed", "error", err)
			os.Exit(1)
		}
		if err := blackliststore.SeedBlacklist(ctx, bs); err != nil {
			log.Error("blacklist seed failed", "error", err)
			os.Exit(1)
		}
		foundationStore = fs
		blacklistStore = bs
		logStore = verifylogstore.NewInMemory()
		log.Info("using seeded in-memory stores")
	}

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher, err := verifylog.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Error("kafka publisher setup failed", "error", err)
		os.Exit(1)
	}
	if publisher != nil {
		defer publisher.Close()
	}

	logService := verifylog.NewService(logStore, log)
	worker := verifylog.NewWorker(logStore, logService.Inbox(), publisher, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("verify log worker stopped", "error", err)
		}
	}()

	verdictCache := verification.NewCache(redisClient, cfg.CacheTTL)

	foundationService := foundation.NewService(foundationStore)
	blacklistService := blacklist.NewService(blacklistStore,
		blacklist.WithReportHook(verdictCache.Invalidate))
	verifyService := verification.NewService(
		foundationService,
		blacklistService,
		logService,
		verification.WithCache(verdictCache),
		verification.WithMetrics(metrics.New()),
		verification.WithLookupTimeout(cfg.LookupTimeout),
	)

	if redisClient != nil {
		health["redis"] = redisClient.Health
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:        log,
		Verification:  verificationhandler.New(verifyService, log),
		Foundations:   foundationhandler.New(foundationService, log),
		Blacklist:     blacklisthandler.New(blacklistService, log),
		VerifyLogs:    verifyloghandler.New(logService, log),
		AdminKeyHash:  cfg.AdminAPIKeyHash,
		JWTSigningKey: cfg.JWTSigningKey,
		HealthChecks:  health,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting truadboon", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
