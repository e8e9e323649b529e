package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableProvidersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_providers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getCategorySummaryHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_category_summary"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	directoryCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/directory"
	attendanceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/attendance"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	directoryServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
	getAvailableProvidersUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_providers"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	getCategorySummaryUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_category_summary"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент DirectoryService
	directoryClient := directoryServiceClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("DirectoryService client initialized (url=%s, timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	// Интерфейс клиента каталога: прямой клиент или кеширующая обертка
	type DirectoryClient interface {
		GetBusinessBySlug(ctx context.Context, slug string) (*directoryServiceClient.Business, error)
		GetServices(ctx context.Context, businessID int64, serviceIDs []int64) ([]directoryServiceClient.Service, error)
	}
	var directory DirectoryClient = directoryClient

	// Кеш снапшотов бизнеса в Redis (если включен)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer rdb.Close()

		directory = directoryCache.New(
			directoryClient,
			rdb,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			log,
		)
		log.Info("Directory snapshot cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		attendanceRepository *attendanceRepo.Repository
		bookingRepository    *bookingRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		attendanceRepository = attendanceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		attendanceRepository = attendanceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		directory,
		attendanceRepository,
		bookingRepository,
		log,
	)
	getCategorySummaryUseCase := getCategorySummaryUC.NewUseCase(
		directory,
		attendanceRepository,
		log,
	)
	getAvailableProvidersUseCase := getAvailableProvidersUC.NewUseCase(
		directory,
		attendanceRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(
		getAvailableSlotsUseCase,
		cfg.Availability.DefaultGranularityMinutes,
		log,
	)
	getCategorySummary := getCategorySummaryHandler.NewHandler(getCategorySummaryUseCase, log)
	getAvailableProviders := getAvailableProvidersHandler.NewHandler(getAvailableProvidersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Сервис read-only: все ручки публичные

	// Поиск доступных слотов для набора услуг
	api.HandleFunc("/businesses/{slug}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Быстрый дневной срез доступности категории
	api.HandleFunc("/businesses/{slug}/categories/{category}/availability",
		getCategorySummary.Handle).Methods(http.MethodGet)

	// Листинг сотрудников с флагом доступности на окне
	api.HandleFunc("/businesses/{slug}/available-providers",
		getAvailableProviders.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
