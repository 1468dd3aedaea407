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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkDeliveryHandler "github.com/repairbooker/booking-service/internal/api/handlers/check_delivery"
	createBookingHandler "github.com/repairbooker/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/repairbooker/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/repairbooker/booking-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/repairbooker/booking-service/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/repairbooker/booking-service/internal/api/handlers/get_catalog"
	getPriceHandler "github.com/repairbooker/booking-service/internal/api/handlers/get_price"
	notifyBookingHandler "github.com/repairbooker/booking-service/internal/api/handlers/notify_booking"
	"github.com/repairbooker/booking-service/internal/api/middleware"
	"github.com/repairbooker/booking-service/internal/config"
	bookingRepo "github.com/repairbooker/booking-service/internal/infra/storage/booking"
	pricingRepo "github.com/repairbooker/booking-service/internal/infra/storage/pricing"
	geolocationClient "github.com/repairbooker/booking-service/internal/integrations/geolocation"
	notifierClient "github.com/repairbooker/booking-service/internal/integrations/notifier"
	bookingsService "github.com/repairbooker/booking-service/internal/service/bookings"
	catalogService "github.com/repairbooker/booking-service/internal/service/catalog"
	calculatePriceUC "github.com/repairbooker/booking-service/internal/usecase/calculate_price"
	checkDeliveryUC "github.com/repairbooker/booking-service/internal/usecase/check_delivery"
	createBookingUC "github.com/repairbooker/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/repairbooker/booking-service/internal/usecase/get_available_slots"
	getCalendarUC "github.com/repairbooker/booking-service/internal/usecase/get_calendar"
	notifyBookingUC "github.com/repairbooker/booking-service/internal/usecase/notify_booking"
	"github.com/repairbooker/booking-service/migrations"
	"github.com/repairbooker/booking-service/pkg/dbmetrics"
	"github.com/repairbooker/booking-service/pkg/logger"
	"github.com/repairbooker/booking-service/pkg/metrics"
	"github.com/repairbooker/booking-service/pkg/simpletxmanager"
	"github.com/repairbooker/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем интеграционных клиентов
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	geoClient := geolocationClient.NewClient(
		cfg.Geolocation.URL,
		time.Duration(cfg.Geolocation.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Notifier=%s timeout=%ds, Geolocation=%s timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Geolocation.URL, cfg.Geolocation.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		pricingRepository *pricingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(pricingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		pricingRepository,
		txMgr,
		createBookingUC.PricingConfig{PickUpCharge: cfg.Pricing.PickUpCharge},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		getAvailableSlotsUC.SlotsConfig{
			StartHour:   cfg.Slots.StartHour,
			EndHour:     cfg.Slots.EndHour,
			StepMinutes: cfg.Slots.StepMinutes,
		},
		log,
	)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		pricingRepository,
		calculatePriceUC.PricingConfig{PickUpCharge: cfg.Pricing.PickUpCharge},
		log,
	)

	checkDeliveryUseCase := checkDeliveryUC.NewUseCase(
		geoClient,
		checkDeliveryUC.DeliveryConfig{
			ShopLat:             cfg.Delivery.ShopLat,
			ShopLon:             cfg.Delivery.ShopLon,
			MaxPickUpDistanceKm: cfg.Delivery.MaxPickUpDistanceKm,
		},
		log,
	)

	notifyBookingUseCase := notifyBookingUC.NewUseCase(bookingRepository, notifier, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPrice := getPriceHandler.NewHandler(calculatePriceUseCase, log)
	checkDelivery := checkDeliveryHandler.NewHandler(checkDeliveryUseCase, log)
	notifyBooking := notifyBookingHandler.NewHandler(notifyBookingUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог моделей и типов ремонта
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Расчет стоимости ремонта
	api.HandleFunc("/price", getPrice.Handle).Methods(http.MethodGet)

	// Месячный вид календаря
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Слоты дня с признаком доступности
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка доступности забора устройства
	api.HandleFunc("/delivery/check", checkDelivery.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отправка подтверждения на почту
	api.HandleFunc("/bookings/{bookingId}/notify", notifyBooking.Handle).Methods(http.MethodPost)

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
