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

	adminHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/admin"
	bookingActionHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/booking_action"
	chatStreamHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/chat_stream"
	checkoutBookingHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/checkout_booking"
	conversationsHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/conversations"
	createBookingHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/create_booking"
	dashboardHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/dashboard"
	documentsHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/documents"
	getAvailabilityHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/list_bookings"
	myProfileHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/my_profile"
	onboardingHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/onboarding"
	paymentLinkHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/payment_link"
	providersHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/providers"
	pushHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/push"
	sessionHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/session"
	submitRatingHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/submit_rating"
	updateAvailabilityHandler "github.com/m04kA/ajeitai-client/internal/api/handlers/update_availability"
	"github.com/m04kA/ajeitai-client/internal/api/middleware"
	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/config"
	"github.com/m04kA/ajeitai-client/internal/domain"
	sessionRepo "github.com/m04kA/ajeitai-client/internal/infra/storage/session"
	"github.com/m04kA/ajeitai-client/internal/integrations/ajeitaiapi"
	"github.com/m04kA/ajeitai-client/internal/integrations/chatservice"
	availabilityService "github.com/m04kA/ajeitai-client/internal/service/availability"
	bookingsService "github.com/m04kA/ajeitai-client/internal/service/bookings"
	conversationsService "github.com/m04kA/ajeitai-client/internal/service/conversations"
	pushService "github.com/m04kA/ajeitai-client/internal/service/push"
	bookingActionUC "github.com/m04kA/ajeitai-client/internal/usecase/booking_action"
	checkoutBookingUC "github.com/m04kA/ajeitai-client/internal/usecase/checkout_booking"
	submitRatingUC "github.com/m04kA/ajeitai-client/internal/usecase/submit_rating"
	"github.com/m04kA/ajeitai-client/pkg/logger"
	"github.com/m04kA/ajeitai-client/pkg/metrics"
	"github.com/m04kA/ajeitai-client/pkg/restclient"
	"github.com/m04kA/ajeitai-client/pkg/tracing"
)

const (
	serviceVersion  = "1.0.0"
	janitorInterval = 5 * time.Minute
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("AJEITAI_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
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

	log.Info("Starting ajeitai-gateway...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены). Интерфейсы остаются nil,
	// если метрики выключены.
	var (
		metricsCollector *metrics.Metrics
		upstreamObserver restclient.Observer
		pollObserver     conversationsService.PollObserver
		pushObserver     pushService.Observer
		streamGauge      chatStreamHandler.StreamGauge
		registryOpts     []auth.RegistryOption
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamObserver = metricsCollector
		pollObserver = metricsCollector
		pushObserver = metricsCollector
		streamGauge = metricsCollector
		registryOpts = append(registryOpts, auth.WithGauge(metricsCollector.ActiveSessions))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Трейсинг (опционально)
	transport := http.DefaultTransport
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(ctx, tracing.Config{
			ServiceName:    cfg.Metrics.ServiceName,
			ServiceVersion: serviceVersion,
			Environment:    cfg.Tracing.Environment,
			Endpoint:       cfg.Tracing.Endpoint,
		})
		if err != nil {
			log.Fatal("Failed to initialize tracing: %v", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				log.Error("Failed to flush traces: %v", err)
			}
		}()
		transport = tracing.Transport(transport)
		log.Info("Tracing enabled (endpoint=%s)", cfg.Tracing.Endpoint)
	}

	// Хранилище сессий в PostgreSQL (только при session.persist)
	if cfg.Session.Persist {
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

		registryOpts = append(registryOpts, auth.WithRepository(sessionRepo.NewRepository(db)))
	}

	// Провайдер идентификации и реестр сессий
	keycloak := auth.NewKeycloak(auth.KeycloakConfig{
		IssuerURL:    cfg.Identity.IssuerURL(),
		ClientID:     cfg.Identity.ClientID,
		ClientSecret: cfg.Identity.ClientSecret,
		Scopes:       cfg.Identity.Scopes,
		Timeout:      time.Duration(cfg.Identity.Timeout) * time.Second,
		Transport:    transport,
	})
	registry := auth.NewRegistry(keycloak, cfg.Session.TTLDuration(), log, registryOpts...)
	go registry.RunJanitor(ctx, janitorInterval)
	log.Info("Identity provider configured (issuer=%s, client=%s)", cfg.Identity.IssuerURL(), cfg.Identity.ClientID)

	// Инициализируем интеграционных клиентов
	apiOpts := []ajeitaiapi.Option{ajeitaiapi.WithTransport(transport)}
	chatOpts := []chatservice.Option{chatservice.WithTransport(transport)}
	if upstreamObserver != nil {
		apiOpts = append(apiOpts, ajeitaiapi.WithObserver(upstreamObserver))
		chatOpts = append(chatOpts, chatservice.WithObserver(upstreamObserver))
	}
	apiClient := ajeitaiapi.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, log, apiOpts...)
	chatClient := chatservice.NewClient(cfg.Chat.BaseURL, time.Duration(cfg.Chat.Timeout)*time.Second, log, chatOpts...)
	log.Info("Integration clients initialized (API=%s timeout=%ds, Chat=%s timeout=%ds)",
		cfg.API.BaseURL, cfg.API.Timeout, cfg.Chat.BaseURL, cfg.Chat.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(apiClient, bookingsService.RealTimeProvider{}, log)
	availabilitySvc := availabilityService.NewService(apiClient, log)
	conversationSvc := conversationsService.NewService(chatClient, cfg.Chat.PollDuration(), pollObserver, log)
	pushSvc := pushService.NewService(apiClient, cfg.Push.VAPIDPublicKey, cfg.Push.TimeoutDuration(), pushObserver, log)
	if !pushSvc.Enabled() {
		log.Info("Push notifications disabled: no VAPID public key")
	}

	// Инициализируем use cases
	bookingActionUseCase := bookingActionUC.NewUseCase(bookingSvc, apiClient, cfg.Booking.LocationTimeoutDuration(), log)
	checkoutUseCase := checkoutBookingUC.NewUseCase(bookingSvc, apiClient, cfg.Booking.LocationTimeoutDuration(), log)
	submitRatingUseCase := submitRatingUC.NewUseCase(bookingSvc, apiClient, log)

	// Инициализируем handlers
	maxUpload := cfg.Booking.MaxUploadBytes()

	session := sessionHandler.NewHandler(registry, bookingSvc, sessionHandler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
		MaxAge: int(cfg.Session.TTLDuration().Seconds()),
	}, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, domain.RoleCustomer, log)
	providerRequests := listBookingsHandler.NewHandler(bookingSvc, domain.RoleProvider, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	acceptBooking := bookingActionHandler.NewHandler(bookingActionUseCase, domain.ActionAccept, "accept", log)
	declineBooking := bookingActionHandler.NewHandler(bookingActionUseCase, domain.ActionDecline, "decline", log)
	cancelBooking := bookingActionHandler.NewHandler(bookingActionUseCase, domain.ActionCancel, "cancel", log)
	confirmPayment := bookingActionHandler.NewHandler(bookingActionUseCase, domain.ActionConfirmPayment, "confirm-payment", log)
	checkIn := bookingActionHandler.NewHandler(bookingActionUseCase, domain.ActionCheckIn, "check-in", log)
	checkOut := checkoutBookingHandler.NewHandler(checkoutUseCase, maxUpload, log)
	paymentLink := paymentLinkHandler.NewHandler(bookingSvc, log)
	submitRating := submitRatingHandler.NewHandler(submitRatingUseCase, log)

	providers := providersHandler.NewHandler(apiClient, log)
	customerProfile := myProfileHandler.NewHandler(myProfileHandler.Endpoints{
		Get:          apiClient.GetMyCustomer,
		Update:       apiClient.UpdateMyCustomer,
		UploadAvatar: apiClient.UploadCustomerAvatar,
	}, "/me/customer", maxUpload, log)
	providerProfile := myProfileHandler.NewHandler(myProfileHandler.Endpoints{
		Get:          apiClient.GetMyProvider,
		Update:       apiClient.UpdateMyProvider,
		UploadAvatar: apiClient.UploadProviderAvatar,
	}, "/me/provider", maxUpload, log)
	onboarding := onboardingHandler.NewHandler(apiClient, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	documents := documentsHandler.NewHandler(apiClient, maxUpload, log)
	dashboard := dashboardHandler.NewHandler(apiClient, log)

	conversations := conversationsHandler.NewHandler(conversationSvc, log)
	chatStream := chatStreamHandler.NewHandler(conversationSvc, streamGauge, cfg.Server.AllowedOrigins, log)
	push := pushHandler.NewHandler(pushSvc, log)
	admin := adminHandler.NewHandler(apiClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/session", session.Login).Methods(http.MethodPost)
	api.HandleFunc("/push/config", push.Config).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (cookie сессии или Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session(registry, cfg.Session.CookieName, log))

	// --- Сессия ---
	protected.HandleFunc("/session", session.Me).Methods(http.MethodGet)
	protected.HandleFunc("/session", session.Logout).Methods(http.MethodDelete)

	// --- Агендаменты (любая роль, действия проверяются предикатом) ---
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

	// --- Каталог ---
	protected.HandleFunc("/providers", providers.List).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{id}", providers.Get).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{id}/ratings", providers.Ratings).Methods(http.MethodGet)

	// --- Чат ---
	protected.HandleFunc("/conversations", conversations.List).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", conversations.Open).Methods(http.MethodPost)
	protected.HandleFunc("/conversations/{id}/messages", conversations.Messages).Methods(http.MethodGet)
	protected.HandleFunc("/conversations/{id}/messages", conversations.Send).Methods(http.MethodPost)
	protected.HandleFunc("/conversations/{id}/ws", chatStream.Handle).Methods(http.MethodGet)

	// --- Push ---
	protected.HandleFunc("/push/subscribe", push.Subscribe).Methods(http.MethodPost)

	// --- Cliente ---
	customer := protected.PathPrefix("").Subrouter()
	customer.Use(middleware.RequireRole(domain.RoleCustomer))

	customer.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/bookings/{id}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPut)
	customer.HandleFunc("/bookings/{id}/payment-link", paymentLink.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/bookings/{id}/rating", submitRating.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/me/customer", customerProfile.Get).Methods(http.MethodGet)
	customer.HandleFunc("/me/customer", customerProfile.Update).Methods(http.MethodPut)
	customer.HandleFunc("/me/customer/avatar", customerProfile.Avatar).Methods(http.MethodPost)

	// Онбординг доступен до получения роли
	protected.HandleFunc("/me/customer/onboarding", onboarding.Customer).Methods(http.MethodPost)
	protected.HandleFunc("/me/provider/onboarding", onboarding.Provider).Methods(http.MethodPost)

	// --- Prestador ---
	provider := protected.PathPrefix("").Subrouter()
	provider.Use(middleware.RequireRole(domain.RoleProvider))

	provider.HandleFunc("/provider/requests", providerRequests.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/bookings/{id}/accept", acceptBooking.Handle).Methods(http.MethodPut)
	provider.HandleFunc("/bookings/{id}/decline", declineBooking.Handle).Methods(http.MethodPut)
	provider.HandleFunc("/bookings/{id}/check-in", checkIn.Handle).Methods(http.MethodPut)
	provider.HandleFunc("/bookings/{id}/check-out", checkOut.Handle).Methods(http.MethodPut)
	provider.HandleFunc("/me/provider", providerProfile.Get).Methods(http.MethodGet)
	provider.HandleFunc("/me/provider", providerProfile.Update).Methods(http.MethodPut)
	provider.HandleFunc("/me/provider/avatar", providerProfile.Avatar).Methods(http.MethodPost)
	provider.HandleFunc("/me/provider/availability", getAvailability.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/me/provider/availability", updateAvailability.Handle).Methods(http.MethodPut)
	provider.HandleFunc("/me/provider/documents", documents.List).Methods(http.MethodGet)
	provider.HandleFunc("/me/provider/documents", documents.Upload).Methods(http.MethodPost)
	provider.HandleFunc("/me/provider/documents/{id}", documents.Delete).Methods(http.MethodDelete)
	provider.HandleFunc("/me/provider/documents/{id}/download", documents.Download).Methods(http.MethodGet)
	provider.HandleFunc("/me/provider/dashboard", dashboard.Handle).Methods(http.MethodGet)

	// --- Admin ---
	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireRole(domain.RoleAdmin))

	adminRoutes.HandleFunc("/overview", admin.Overview).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/providers", admin.Providers).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/bookings", admin.Bookings).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/payments", admin.Payments).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/withdrawals", admin.Withdrawals).Methods(http.MethodGet)

	var handler http.Handler = r
	if cfg.Tracing.Enabled {
		handler = tracing.Handler(r, "ajeitai-gateway")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownDuration())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем janitor и websocket потоки, дожидаемся фоновых push-регистраций
	stop()
	pushSvc.Wait()

	log.Info("Server stopped gracefully")
}
