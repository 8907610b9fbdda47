package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/drought_response_system/internal/cache"
	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/handler/http/dashboard"
	"github.com/shenikar/drought_response_system/internal/metrics"
	"github.com/shenikar/drought_response_system/internal/recordstore"
	"github.com/shenikar/drought_response_system/pkg/logger"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry, "dashboard")

	// Клиент хранилища записей и кэш синхронизации
	client := recordstore.NewClient(cfg.RecordStoreURL, cfg.RecordStoreAPIKey, cfg.StoreTimeout)
	recordCache := cache.New(client, client,
		cache.WithLogger(log),
		cache.WithMetrics(recorder),
		cache.WithTimeout(cfg.StoreTimeout),
	)

	// Первичная загрузка. Дашборд стартует и с пустым зеркалом, следующая синхронизация повторит попытку
	if err := recordCache.LoadAll(ctx); err != nil {
		log.WithError(err).Warn("Initial sync with record store failed")
	}

	// Периодическая полная синхронизация
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.ResyncSchedule, func() {
		if err := recordCache.LoadAll(ctx); err != nil {
			log.WithError(err).Warn("Scheduled sync with record store failed")
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule resync %q: %v", cfg.ResyncSchedule, err)
	}
	scheduler.Start()
	log.Infof("Resync scheduled: %s", cfg.ResyncSchedule)

	handler := dashboard.NewHandler(recordCache, log)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(recorder.GinMiddleware())
	handler.RegisterRoutes(router.Group("/api"))
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	router.GET("/system/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "synced_at": recordCache.SyncedAt()})
	})

	// Запросы наследуют ctx, поэтому cancel закрывает потоки SSE
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("Dashboard server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Дожидаемся синхронизации, если она идет
	<-scheduler.Stop().Done()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
