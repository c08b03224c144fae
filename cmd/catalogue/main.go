package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/app"
	"github.com/Spok95/online-catalogue/internal/catalogue"
	"github.com/Spok95/online-catalogue/internal/config"
	"github.com/Spok95/online-catalogue/internal/ctxutil"
	"github.com/Spok95/online-catalogue/internal/db"
	"github.com/Spok95/online-catalogue/internal/httpapi"
	"github.com/Spok95/online-catalogue/internal/jobs"
	"github.com/Spok95/online-catalogue/internal/logging"
	"github.com/Spok95/online-catalogue/internal/observability"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ctxutil.DefaultDBTimeout = cfg.DBTimeout

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Closer()
	logger := lg.Base

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		logger.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, lg.Level); err != nil {
		observability.CaptureErr(err)
		logger.Error("catalogue stopped", zap.Error(err))
		flush()
		os.Exit(1)
	}
}

// run returns only after the HTTP server has drained and the jobs have
// stopped, so the deferred pool close never races an in-flight query.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, level zap.AtomicLevel) error {
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, logger); err != nil {
		return err
	}

	gdb, err := db.Gorm(database, logging.NewGormLogger(logger, cfg.SlowQuery))
	if err != nil {
		return err
	}
	repo := catalogue.New(gdb, logger)

	if cfg.SeedDemo {
		if _, err := repo.SeedDemo(ctx); err != nil {
			return err
		}
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	api := httpapi.New(repo, logger).Router()
	srv, err := app.StartHTTP(ctx, cfg.HTTPAddr, database, api, level, logger)
	if err != nil {
		return err
	}

	runner := jobs.New(ctx, logger)
	runner.Every(cfg.StatsInterval, jobs.StatsJob, jobs.PublishStats(repo))

	logger.Info("catalogue started", zap.String("version", version), zap.String("env", cfg.Env))
	<-ctx.Done()
	logger.Info("shutting down")

	if err := srv.Wait(); err != nil {
		logger.Warn("http drain incomplete", zap.Error(err))
	}
	runner.Wait()
	logger.Info("stopped")
	return nil
}
