package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/school-admin-service/internal/api/http"
	"github.com/spec-kit/school-admin-service/internal/api/http/handlers"
	"github.com/spec-kit/school-admin-service/internal/auth"
	"github.com/spec-kit/school-admin-service/internal/config"
	"github.com/spec-kit/school-admin-service/internal/events"
	"github.com/spec-kit/school-admin-service/internal/observability"
	"github.com/spec-kit/school-admin-service/internal/persistence"
	"github.com/spec-kit/school-admin-service/internal/repository"
	"github.com/spec-kit/school-admin-service/internal/service"
	"github.com/spec-kit/school-admin-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	feesRepo := repository.NewFeesHistoryRepository(pool)
	libraryRepo := repository.NewLibraryHistoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	sessions := auth.NewRedisSessionStore(redis.Client)

	authService := service.NewAuthService(*cfg, accountRepo, sessions)
	identityService := service.NewIdentityService(*cfg, accountRepo, dispatcher)
	studentService := service.NewStudentService(studentRepo, dispatcher)
	feesService := service.NewFeesService(feesRepo, studentRepo, dispatcher)
	libraryService := service.NewLibraryService(libraryRepo, studentRepo, dispatcher)

	if err := identityService.SeedAdmin(ctx, cfg.Bootstrap); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), accountRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Accounts:       handlers.NewAccountsHandler(identityService),
		Students:       handlers.NewStudentsHandler(studentService),
		Fees:           handlers.NewFeesHandler(feesService),
		Library:        handlers.NewLibraryHandler(libraryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
