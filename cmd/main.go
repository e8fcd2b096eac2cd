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

	addSlotHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/add_slot"
	createReservationHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/create_reservation"
	exportReservationsHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/export_reservations"
	getAdviceHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/get_advice"
	getAvailableSlotsHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/get_available_slots"
	listReservationsHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/list_reservations"
	listTeacherSlotsHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/list_teacher_slots"
	listTeachersHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/list_teachers"
	removeSlotHandler "github.com/harutok/SchoolReserve-Service/internal/api/handlers/remove_slot"
	"github.com/harutok/SchoolReserve-Service/internal/api/middleware"
	"github.com/harutok/SchoolReserve-Service/internal/config"
	stateRepo "github.com/harutok/SchoolReserve-Service/internal/infra/storage/state"
	adviceClient "github.com/harutok/SchoolReserve-Service/internal/integrations/advicegen"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
	reservationsService "github.com/harutok/SchoolReserve-Service/internal/service/reservations"
	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
	createReservationUC "github.com/harutok/SchoolReserve-Service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/harutok/SchoolReserve-Service/internal/usecase/get_available_slots"
	"github.com/harutok/SchoolReserve-Service/pkg/logger"
	"github.com/harutok/SchoolReserve-Service/pkg/metrics"
)

func main() {
	// Загружаем .env (если есть) до чтения конфигурации
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

	log.Info("Starting SchoolReserve-Service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем хранилище состояния
	stateRepository := stateRepo.NewRepository(db)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	if err := stateRepository.EnsureSchema(startupCtx); err != nil {
		log.Fatal("Failed to ensure storage schema: %v", err)
	}

	// Инициализируем движок бронирования и загружаем состояние
	var engineMetrics engine.Metrics
	if metricsCollector != nil {
		engineMetrics = metricsCollector
	}
	reservationEngine := engine.New(stateRepository, engineMetrics, log)
	if err := reservationEngine.Load(startupCtx); err != nil {
		log.Fatal("Failed to load engine state: %v", err)
	}

	// Инициализируем клиента генератора советов.
	// Выключенный генератор эквивалентен отсутствию ключа: клиент всегда
	// отдает строку-заглушку и не блокирует бронирование.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if !cfg.Advice.Enabled {
		apiKey = ""
		log.Info("Advice generator disabled by config, fallback responses only")
	} else if apiKey == "" {
		log.Warn("GEMINI_API_KEY is not set, advice generator will serve fallback responses only")
	}
	advice := adviceClient.NewClient(
		cfg.Advice.BaseURL,
		cfg.Advice.Model,
		apiKey,
		time.Duration(cfg.Advice.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(reservationEngine, log)
	reservationsSvc := reservationsService.NewService(reservationEngine, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationEngine, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationEngine, log)

	// Инициализируем handlers
	listTeachers := listTeachersHandler.NewHandler(reservationEngine, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAdvice := getAdviceHandler.NewHandler(advice, log)
	listTeacherSlots := listTeacherSlotsHandler.NewHandler(slotsSvc, log)
	addSlot := addSlotHandler.NewHandler(slotsSvc, log)
	removeSlot := removeSlotHandler.NewHandler(slotsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	exportReservations := exportReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// GUARDIAN ROUTES (публичные, только доступность и бронирование)
	// ============================================================

	api.HandleFunc("/teachers", listTeachers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/advice", getAdvice.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (общий код доступа в заголовке X-Staff-Code)
	// ============================================================

	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.Staff.AccessCode, log))

	staff.HandleFunc("/teachers/{teacherId}/slots", listTeacherSlots.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/slots", addSlot.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/slots/{slotId}", removeSlot.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/export", exportReservations.Handle).Methods(http.MethodGet)

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
