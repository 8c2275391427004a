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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cancelInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/cancel_interview"
	completeInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/complete_interview"
	createBlockedPeriodHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/create_blocked_period"
	deleteBlockedPeriodHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/delete_blocked_period"
	getAvailabilityHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/get_available_slots"
	getInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/get_interview"
	healthHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/health"
	initializeAvailabilityHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/initialize_availability"
	joinInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/join_interview"
	listBlockedPeriodsHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/list_blocked_periods"
	listInterviewsHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/list_interviews"
	replaceAvailabilityHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/replace_availability"
	rescheduleInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/reschedule_interview"
	scheduleInterviewHandler "github.com/Am1ne12/JobConnect/internal/api/handlers/schedule_interview"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/config"
	"github.com/Am1ne12/JobConnect/internal/domain"
	applicationRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/application"
	availabilityRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/availability"
	blockedPeriodRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/blocked_period"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
	"github.com/Am1ne12/JobConnect/internal/integrations/notifier"
	"github.com/Am1ne12/JobConnect/internal/integrations/realtime"
	availabilityService "github.com/Am1ne12/JobConnect/internal/service/availability"
	interviewsService "github.com/Am1ne12/JobConnect/internal/service/interviews"
	slotsService "github.com/Am1ne12/JobConnect/internal/service/slots"
	cancelInterviewUC "github.com/Am1ne12/JobConnect/internal/usecase/cancel_interview"
	getAvailableSlotsUC "github.com/Am1ne12/JobConnect/internal/usecase/get_available_slots"
	rescheduleInterviewUC "github.com/Am1ne12/JobConnect/internal/usecase/reschedule_interview"
	scheduleInterviewUC "github.com/Am1ne12/JobConnect/internal/usecase/schedule_interview"
	"github.com/Am1ne12/JobConnect/pkg/dbmetrics"
	"github.com/Am1ne12/JobConnect/pkg/logger"
	"github.com/Am1ne12/JobConnect/pkg/metrics"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
	"github.com/Am1ne12/JobConnect/pkg/txmanager"
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

	log.Info("Starting JobConnect interview service...")

	// Трейсинг
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to setup tracing: %v", err)
	}

	// Метрики (nil, если выключены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без коллектора обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	interviewRepository := interviewRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	blockedPeriodRepository := blockedPeriodRepo.NewRepository(wrappedDB)
	applicationRepository := applicationRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	// Доставка событий: kafka и realtime опциональны
	var (
		eventWriter    notifier.KafkaWriter
		realtimeClient notifier.RealtimeClient
	)
	if cfg.Kafka.Enabled {
		eventWriter = notifier.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	if cfg.Realtime.Enabled {
		realtimeClient = realtime.NewClient(
			cfg.Realtime.URL,
			time.Duration(cfg.Realtime.Timeout)*time.Second,
			log,
		)
		log.Info("Realtime client enabled (url=%s, timeout=%ds)", cfg.Realtime.URL, cfg.Realtime.Timeout)
	}

	dispatcher := notifier.NewDispatcher(eventWriter, realtimeClient, notifier.Config{
		QueueSize:  cfg.Kafka.QueueSize,
		MaxRetries: cfg.Kafka.MaxRetries,
	}, log)
	dispatcher.Start()
	defer dispatcher.Close()

	// Сервисы
	slotSvc := slotsService.NewService(
		availabilityRepository,
		interviewRepository,
		blockedPeriodRepository,
		slotsService.Config{
			InterviewDuration: cfg.Scheduling.InterviewDuration(),
			Location:          location,
			MinNoticeDays:     cfg.Scheduling.MinNoticeDays,
		},
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		blockedPeriodRepository,
		profileRepository,
		txMgr,
		dispatcher,
		log,
	)
	interviewSvc := interviewsService.NewService(
		interviewRepository,
		profileRepository,
		dispatcher,
		cfg.Scheduling.JoinWindow(),
		log,
	)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotSvc,
		profileRepository,
		getAvailableSlotsUC.Config{
			DefaultDays: cfg.Scheduling.DefaultRangeDays,
			MaxDays:     cfg.Scheduling.MaxRangeDays,
		},
		log,
	)
	scheduleInterviewUseCase := scheduleInterviewUC.NewUseCase(
		applicationRepository,
		profileRepository,
		interviewRepository,
		slotSvc,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	rescheduleInterviewUseCase := rescheduleInterviewUC.NewUseCase(
		interviewRepository,
		slotSvc,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	cancelInterviewUseCase := cancelInterviewUC.NewUseCase(
		interviewRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailability := replaceAvailabilityHandler.NewHandler(availabilitySvc, log)
	initializeAvailability := initializeAvailabilityHandler.NewHandler(availabilitySvc, log)
	createBlockedPeriod := createBlockedPeriodHandler.NewHandler(availabilitySvc, log)
	listBlockedPeriods := listBlockedPeriodsHandler.NewHandler(availabilitySvc, log)
	deleteBlockedPeriod := deleteBlockedPeriodHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	scheduleInterview := scheduleInterviewHandler.NewHandler(scheduleInterviewUseCase, log)
	rescheduleInterview := rescheduleInterviewHandler.NewHandler(rescheduleInterviewUseCase, log)
	cancelInterview := cancelInterviewHandler.NewHandler(cancelInterviewUseCase, log)
	listInterviews := listInterviewsHandler.NewHandler(interviewSvc, log)
	getInterview := getInterviewHandler.NewHandler(interviewSvc, log)
	joinInterview := joinInterviewHandler.NewHandler(interviewSvc, log)
	completeInterview := completeInterviewHandler.NewHandler(interviewSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Ограничение частоты записи на слоты (redis, fail-open)
	var redisClient *redis.Client
	limitBooking := func(h http.Handler) http.Handler { return h }
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := middleware.NewRateLimiter(
			redisClient,
			cfg.Redis.RateLimit,
			time.Duration(cfg.Redis.WindowSeconds)*time.Second,
			"jobconnect:rl:booking",
			log,
		)
		limitBooking = limiter.Middleware
		log.Info("Rate limiting enabled (addr=%s, limit=%d/%ds)", cfg.Redis.Addr, cfg.Redis.RateLimit, cfg.Redis.WindowSeconds)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// API (все маршруты требуют аутентификации)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	companyOnly := middleware.RequireRole(domain.RoleCompany)
	candidateOnly := middleware.RequireRole(domain.RoleCandidate)

	// --- Расписание компании ---
	api.Handle("/availability", companyOnly(http.HandlerFunc(getAvailability.Handle))).Methods(http.MethodGet)
	api.Handle("/availability", companyOnly(http.HandlerFunc(replaceAvailability.Handle))).Methods(http.MethodPut)
	api.Handle("/availability/initialize", companyOnly(http.HandlerFunc(initializeAvailability.Handle))).Methods(http.MethodPost)
	api.Handle("/availability/blocked-periods", companyOnly(http.HandlerFunc(listBlockedPeriods.Handle))).Methods(http.MethodGet)
	api.Handle("/availability/blocked-periods", companyOnly(http.HandlerFunc(createBlockedPeriod.Handle))).Methods(http.MethodPost)
	api.Handle("/availability/blocked-periods/{blockedPeriodId:[0-9]+}",
		companyOnly(http.HandlerFunc(deleteBlockedPeriod.Handle)),
	).Methods(http.MethodDelete)

	// Свободные слоты видны любому аутентифицированному пользователю
	api.HandleFunc("/availability/{companyId:[0-9]+}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Собеседования ---
	api.Handle("/interviews",
		candidateOnly(limitBooking(http.HandlerFunc(scheduleInterview.Handle))),
	).Methods(http.MethodPost)
	api.HandleFunc("/interviews", listInterviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/interviews/{interviewId:[0-9]+}", getInterview.Handle).Methods(http.MethodGet)
	api.Handle("/interviews/{interviewId:[0-9]+}/reschedule",
		limitBooking(http.HandlerFunc(rescheduleInterview.Handle)),
	).Methods(http.MethodPut)
	api.HandleFunc("/interviews/{interviewId:[0-9]+}/cancel", cancelInterview.Handle).Methods(http.MethodPut)
	api.HandleFunc("/interviews/{interviewId:[0-9]+}/join", joinInterview.Handle).Methods(http.MethodGet)
	api.Handle("/interviews/{interviewId:[0-9]+}/complete",
		companyOnly(http.HandlerFunc(completeInterview.Handle)),
	).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, "jobconnect-interviews"),
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
