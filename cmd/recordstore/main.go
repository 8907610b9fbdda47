package main

import (
	"context"
	"errors"
	"flag"
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

	"github.com/shenikar/drought_response_system/internal/auth"
	"github.com/shenikar/drought_response_system/internal/config"
	v1 "github.com/shenikar/drought_response_system/internal/handler/http/v1"
	"github.com/shenikar/drought_response_system/internal/metrics"
	"github.com/shenikar/drought_response_system/internal/repository"
	"github.com/shenikar/drought_response_system/internal/seed"
	"github.com/shenikar/drought_response_system/internal/service"
	"github.com/shenikar/drought_response_system/internal/webhook"
	"github.com/shenikar/drought_response_system/pkg/logger"
	"github.com/shenikar/drought_response_system/pkg/postgres"
	redisclient "github.com/shenikar/drought_response_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/drought_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Drought Response Record Store API
// @version 1.0
// @description Record store for villages, water points, livestock, NGO activities and alerts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// alertSinks собирает каналы доставки оповещений из конфигурации
func alertSinks(cfg *config.Config, log *logrus.Logger) []webhook.Sink {
	var sinks []webhook.Sink
	if cfg.WebhookURL != "" {
		sinks = append(sinks, webhook.NewHTTPSink(cfg.WebhookURL, cfg.WebhookSecret, cfg.WebhookTimeout))
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		telegramSink, err := webhook.NewTelegramSink(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.WithError(err).Error("Failed to initialize Telegram sink, alerts will not be sent to Telegram")
		} else {
			sinks = append(sinks, telegramSink)
		}
	}
	return sinks
}

func main() {
	seedData := flag.Bool("seed", false, "populate an empty store with demo records")
	flag.Parse()

	// Загрузка конфигурации
	cfg, err := config.LoadStoreConfig()
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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, 0)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозитория
	recordRepo := repository.NewRecordRepository(dbpool, redisClient, cfg.RecordCacheTTL)

	if *seedData {
		if _, err := seed.Run(ctx, recordRepo, log); err != nil {
			log.Fatalf("Failed to seed record store: %v", err)
		}
	}

	// Очередь событий оповещений и воркер доставки
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewWorker(redisClient, log, cfg, alertSinks(cfg, log)...)
	alertWorker.Start(ctx)

	// Инициализация сервисов
	recordService := service.NewRecordService(recordRepo, log, alertPublisher)
	checker := auth.NewStaticChecker(cfg.Users)

	// Инициализация хэндлеров
	handler := v1.NewHandler(recordService, checker, log, cfg)

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry, "recordstore")

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(recorder.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
