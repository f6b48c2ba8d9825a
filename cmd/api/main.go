// @title           News API
// @version         2.0
// @description     News, comments and categories with role-based access.
// @BasePath        /
// @securityDefinitions.basic  BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/newsportal/news-api/internal/api"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/core/service"
	"github.com/newsportal/news-api/internal/infrastructure/db/mongo"
	"github.com/newsportal/news-api/internal/infrastructure/db/redis"
	"github.com/newsportal/news-api/internal/infrastructure/db/sqlstore"
	"github.com/newsportal/news-api/internal/infrastructure/queue"
	"github.com/newsportal/news-api/internal/pkg/config"
	"github.com/newsportal/news-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "news-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Relational store ---
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.DSN,
		MaxOpenConns: cfg.DB.MaxOpenConns,
	}, logger.Component(log, "sqlstore"))
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := sqlstore.Migrate(db); err != nil {
		return err
	}

	userRepo := sqlstore.NewUserRepository(db)
	newsRepo := sqlstore.NewNewsRepository(db)
	commentRepo := sqlstore.NewCommentRepository(db)
	categoryRepo := sqlstore.NewCategoryRepository(db)

	var opts []service.Option

	// --- Audit trail (optional) ---
	var (
		mongoDB   *gomongo.Database
		auditRepo ports.AuditRepository
	)
	if cfg.Mongo.Enabled {
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := mongo.NewAuditRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to create audit indexes")
		}

		dispatcher := queue.NewDispatcher(cfg.Audit.Workers, repo, logger.Component(log, "audit"))
		dispatcher.Start(context.Background())
		defer dispatcher.Close()

		mongoDB, auditRepo = database, repo
		opts = append(opts, service.WithAudit(dispatcher))
	}

	// --- Idempotency keys (optional) ---
	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		opts = append(opts, service.WithIdempotency(redis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)))
	}

	svcLog := logger.Component(log, "service")
	e := api.NewRouter(api.Dependencies{
		Log:        log,
		Auth:       service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL),
		Users:      service.NewUserService(userRepo, svcLog, opts...),
		News:       service.NewNewsService(newsRepo, commentRepo, categoryRepo, userRepo, svcLog, opts...),
		Comments:   service.NewCommentService(commentRepo, newsRepo, userRepo, svcLog, opts...),
		Categories: service.NewCategoryService(categoryRepo, svcLog, opts...),
		Audit:      service.NewAuditService(auditRepo),
		SQL:        db,
		Mongo:      mongoDB,
		Redis:      rdb,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("db_driver", cfg.DB.Driver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
