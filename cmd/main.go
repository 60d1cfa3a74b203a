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

	addClosedDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/add_closed_date"
	billingWebhookHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/billing_webhook"
	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createCheckoutSessionHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_checkout_session"
	createPublicAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_public_appointment"
	createServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_service"
	deactivateServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/deactivate_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_business_hours"
	getDashboardStatsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_dashboard_stats"
	getPublicProfileHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_public_profile"
	getSubscriptionStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_subscription_status"
	listAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_appointments"
	listClosedDatesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_closed_dates"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	loginTenantHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/login_tenant"
	registerTenantHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/register_tenant"
	removeClosedDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/remove_closed_date"
	updateBookingLinkHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_booking_link"
	updateBusinessHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_business_hours"
	updateServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	tenantRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/billing"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	accountsService "github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	tenantsService "github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	createPublicAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_public_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
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

	if cfg.Metrics.Enabled {
		metrics.RegisterDBPool(db, cfg.Metrics.ServiceName)
		log.Info("Database pool metrics registered")
	}

	// Менеджер транзакций для операций записи
	txMgr := txmanager.New(db)

	// Инициализируем репозитории
	tenantRepository := tenantRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	// Инициализируем интеграционных клиентов
	mailClient := mailer.NewClient(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, cfg.Mail.Enabled, log)
	billingClient := billing.NewClient(
		cfg.Billing.APIKey,
		cfg.Billing.WebhookSecret,
		cfg.Billing.SubscriptionPrice,
		cfg.Billing.Currency,
		cfg.Billing.SuccessURL,
		cfg.Billing.CancelURL,
		log,
	)
	log.Info("Integration clients initialized (mail enabled=%v, billing configured=%v)",
		cfg.Mail.Enabled, cfg.Billing.APIKey != "")

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(
		tenantRepository,
		scheduleRepository,
		catalogRepository,
		appointmentRepository,
		mailClient,
		accountsService.Config{
			JWTSecret:         []byte(cfg.Auth.JWTSecret),
			TokenTTL:          time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
			BcryptCost:        cfg.Auth.BcryptCost,
			TrialDays:         cfg.Booking.TrialDays,
			SubscriptionDays:  cfg.Booking.SubscriptionDays,
			SubscriptionPrice: cfg.Billing.SubscriptionPrice,
		},
		log,
	)
	tenantsSvc := tenantsService.NewService(tenantRepository, catalogRepository, scheduleRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		tenantsSvc,
		catalogRepository,
		scheduleRepository,
		appointmentRepository,
		log,
	)
	createPublicAppointmentUseCase := createPublicAppointmentUC.NewUseCase(
		tenantsSvc,
		catalogRepository,
		scheduleRepository,
		appointmentRepository,
		txMgr,
		mailClient,
		createPublicAppointmentUC.Config{
			RequireActiveAccess: cfg.Booking.PublicRequiresActiveAccess,
		},
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogRepository,
		scheduleRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerTenant := registerTenantHandler.NewHandler(accountsSvc, log)
	loginTenant := loginTenantHandler.NewHandler(accountsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(accountsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deactivateService := deactivateServiceHandler.NewHandler(catalogSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	listClosedDates := listClosedDatesHandler.NewHandler(scheduleSvc, log)
	addClosedDate := addClosedDateHandler.NewHandler(scheduleSvc, log)
	removeClosedDate := removeClosedDateHandler.NewHandler(scheduleSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateBookingLink := updateBookingLinkHandler.NewHandler(tenantsSvc, log)
	getSubscriptionStatus := getSubscriptionStatusHandler.NewHandler(accountsSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(tenantRepository, billingClient, log)
	billingWebhook := billingWebhookHandler.NewHandler(billingClient, accountsSvc, log)
	getPublicProfile := getPublicProfileHandler.NewHandler(tenantsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createPublicAppointment := createPublicAppointmentHandler.NewHandler(createPublicAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход владельцев
	api.HandleFunc("/auth/register", registerTenant.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginTenant.Handle).Methods(http.MethodPost)

	// Вебхук платёжного провайдера
	api.HandleFunc("/billing/webhook", billingWebhook.Handle).Methods(http.MethodPost)

	// Публичная страница записи
	api.HandleFunc("/public/{tenant}", getPublicProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/{tenant}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/{tenant}/appointments", createPublicAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret)))

	// Подписка доступна и с истёкшим триалом
	protected.HandleFunc("/subscription", getSubscriptionStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/subscription/checkout", createCheckoutSession.Handle).Methods(http.MethodPost)

	// ============================================================
	// GATED ROUTES (требуют активный триал или подписку)
	// ============================================================

	gated := protected.PathPrefix("").Subrouter()
	gated.Use(middleware.AccessGate(accountsSvc))

	// --- Кабинет ---
	gated.HandleFunc("/dashboard", getDashboardStats.Handle).Methods(http.MethodGet)
	gated.HandleFunc("/booking-link", updateBookingLink.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	gated.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	gated.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	gated.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	gated.HandleFunc("/services/{serviceId}", deactivateService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	gated.HandleFunc("/schedule/hours", getBusinessHours.Handle).Methods(http.MethodGet)
	gated.HandleFunc("/schedule/hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	gated.HandleFunc("/schedule/closed-dates", listClosedDates.Handle).Methods(http.MethodGet)
	gated.HandleFunc("/schedule/closed-dates", addClosedDate.Handle).Methods(http.MethodPost)
	gated.HandleFunc("/schedule/closed-dates/{date}", removeClosedDate.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	gated.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	gated.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	gated.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped")
}
