package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expensetracker/expense-system/internal/api"
	"github.com/expensetracker/expense-system/internal/core/service"
	"github.com/expensetracker/expense-system/internal/infrastructure/config"
	"github.com/expensetracker/expense-system/internal/infrastructure/db/postgres"
	redisdb "github.com/expensetracker/expense-system/internal/infrastructure/db/redis"
	"github.com/expensetracker/expense-system/internal/infrastructure/queue"
	"github.com/expensetracker/expense-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "expense-api"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "expense-api",
		Pretty:  cfg.Env == "development",
	})

	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Recurring-expense posting pipeline.
	expenseRepo := postgres.NewStandardExpenseRepository(pool, logger.With("posting"))
	postingService := service.NewPostingService(
		expenseRepo,
		postgres.NewTransactionRepository(pool, logger.With("posting")),
		postgres.NewWalletRepository(pool, logger.With("posting")),
		redisdb.NewPostingDedup(rdb),
		logger.With("posting"),
	)
	dispatcher := queue.NewDispatcher(cfg.Scheduler.Workers, postingService, logger.With("dispatcher"))
	dispatcher.Start(ctx)
	queue.NewScheduler(expenseRepo, dispatcher, cfg.Scheduler.Interval, logger.With("scheduler")).Start(ctx)

	e := api.NewRouter(cfg, pool, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("stopped")
}
