package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/waste_sorting_system/internal/config"
	v1 "github.com/shenikar/waste_sorting_system/internal/handler/http/v1"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/realtime"
	"github.com/shenikar/waste_sorting_system/internal/repository"
	"github.com/shenikar/waste_sorting_system/internal/service"
	"github.com/shenikar/waste_sorting_system/internal/webhook"
	"github.com/shenikar/waste_sorting_system/pkg/logger"
	"github.com/shenikar/waste_sorting_system/pkg/metrics"
	"github.com/shenikar/waste_sorting_system/pkg/postgres"
	redisclient "github.com/shenikar/waste_sorting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/waste_sorting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Waste Sorting Rewards API
// @version 1.0
// @description Campus waste sorting service: bin recommendations, deposits, points and rewards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Демонстрационные контейнеры кампуса
	if err := repository.SeedBins(ctx, dbpool, models.DefaultBins(time.Now().UTC())); err != nil {
		log.Fatalf("Failed to seed bins: %v", err)
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики Prometheus
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Рассылка обновлений контейнеров по websocket
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	// Инициализация репозиториев
	binRepo := repository.NewBinRepository(dbpool, redisClient, cfg.BinCacheTTL)
	accountRepo := repository.NewAccountRepository(dbpool)
	sessionStore := repository.NewSessionStore(redisClient)

	// Инициализация сервисов
	accountService := service.NewAccountService(accountRepo, sessionStore, log, cfg)
	binService := service.NewBinService(binRepo, hub, log, appMetrics)
	wasteService := service.NewWasteService(binService, accountRepo, webhookPublisher, log, cfg, appMetrics)
	rewardService := service.NewRewardService(models.DefaultRewards(), accountRepo, webhookPublisher, log, appMetrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(accountService, binService, wasteService, rewardService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(appMetrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков и websocket-хаб
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
