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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignStaffHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/assign_staff"
	cancelBookingHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/complete_booking"
	confirmPaymentHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/get_booking"
	getBookingRequestsHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/get_booking_requests"
	getStaffTasksHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/get_staff_tasks"
	getUserBookingsHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/get_user_bookings"
	rescheduleBookingHandler "github.com/petspa/PetSpa-BookingService/internal/api/handlers/reschedule_booking"
	"github.com/petspa/PetSpa-BookingService/internal/api/middleware"
	"github.com/petspa/PetSpa-BookingService/internal/config"
	bookingRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/booking"
	changeRequestRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/changerequest"
	taskRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/task"
	paymentServiceClient "github.com/petspa/PetSpa-BookingService/internal/integrations/paymentservice"
	petCatalogClient "github.com/petspa/PetSpa-BookingService/internal/integrations/petcatalog"
	staffServiceClient "github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	bookingsService "github.com/petspa/PetSpa-BookingService/internal/service/bookings"
	tasksService "github.com/petspa/PetSpa-BookingService/internal/service/tasks"
	createBookingUC "github.com/petspa/PetSpa-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/petspa/PetSpa-BookingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/petspa/PetSpa-BookingService/internal/usecase/reschedule_booking"
	"github.com/petspa/PetSpa-BookingService/pkg/dbmetrics"
	"github.com/petspa/PetSpa-BookingService/pkg/logger"
	"github.com/petspa/PetSpa-BookingService/pkg/metrics"
	"github.com/petspa/PetSpa-BookingService/pkg/simpletxmanager"
	"github.com/petspa/PetSpa-BookingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (DB_PASSWORD и т.п.), если файл есть
	_ = godotenv.Load()

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

	log.Info("Starting PetSpa-BookingService...")
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

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	catalogClient := petCatalogClient.NewClient(
		cfg.PetCatalog.URL,
		time.Duration(cfg.PetCatalog.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		cfg.PaymentService.CallbackURL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s, PetCatalog=%s, PaymentService=%s)",
		cfg.StaffService.URL, cfg.PetCatalog.URL, cfg.PaymentService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		taskRepository    *taskRepo.Repository
		requestRepository *changeRequestRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		requestRepository = changeRequestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		requestRepository = changeRequestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		taskRepository,
		requestRepository,
		staffClient,
		txMgr,
		log,
	)
	taskSvc := tasksService.NewService(taskRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		taskRepository,
		staffClient,
		catalogClient,
		paymentClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		taskRepository,
		staffClient,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		taskRepository,
		requestRepository,
		staffClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	assignStaff := assignStaffHandler.NewHandler(bookingSvc, log)
	getBookingRequests := getBookingRequestsHandler.NewHandler(bookingSvc, log)
	getStaffTasks := getStaffTasksHandler.NewHandler(taskSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступных слотов на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Callback платёжного шлюза
	api.HandleFunc("/payments/callback", confirmPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// История переносов бронирования
	protected.HandleFunc("/bookings/{bookingId}/requests", getBookingRequests.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES (для оператора, доступны только внутри сети)
	// ============================================================

	internal := r.PathPrefix("/internal").Subrouter()

	// Завершение оказанной услуги
	internal.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Назначение сотрудника на AUTO бронирование
	internal.HandleFunc("/bookings/{bookingId}/staff", assignStaff.Handle).Methods(http.MethodPost)

	// Расписание задач сотрудников
	internal.HandleFunc("/tasks", getStaffTasks.Handle).Methods(http.MethodGet)

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
