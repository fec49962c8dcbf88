package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	cancelBookingHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/cancel_booking"
	changePasswordHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/change_password"
	createBookingHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_booking"
	createProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_professional"
	createServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_service"
	createUserHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_user"
	deleteUserHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/delete_user"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_bookings"
	listProfessionalsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_services"
	listUsersHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/login"
	updateAvailabilityHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_booking_status"
	updateUserRoleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_user_role"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/infra/auth"
	bookingRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/booking"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-AgendaService/internal/service/bookings"
	professionalsService "github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	servicesService "github.com/m04kA/SMC-AgendaService/internal/service/services"
	usersService "github.com/m04kA/SMC-AgendaService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting %s %s...", appName, Version)
	log.Info("Configuration loaded from %s", configPath)

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
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует вызовы в *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	professionalRepository := professionalRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	professionalSvc := professionalsService.NewService(professionalRepository, log)
	serviceSvc := servicesService.NewService(serviceRepository, professionalRepository, txMgr, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		professionalRepository,
		userRepository,
		serviceRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		professionalRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createService := createServiceHandler.NewHandler(serviceSvc, log)
	listServices := listServicesHandler.NewHandler(serviceSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(professionalSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(professionalSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	changePassword := changePasswordHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := newRouter(routerConfig{
		handlers: routeHandlers{
			createService:            createService.Handle,
			listServices:             listServices.Handle,
			createProfessional:       createProfessional.Handle,
			listProfessionals:        listProfessionals.Handle,
			getAvailableSlots:        getAvailableSlots.Handle,
			updateAvailability:       updateAvailability.Handle,
			createUser:               createUser.Handle,
			login:                    login.Handle,
			changePassword:           changePassword.Handle,
			listUsers:                listUsers.Handle,
			updateUserRole:           updateUserRole.Handle,
			deleteUser:               deleteUser.Handle,
			createBooking:            createBooking.Handle,
			listBookings:             listBookings.Handle,
			updateBookingStatus:      updateBookingStatus.Handle,
			adminUpdateBookingStatus: updateBookingStatus.HandleAdmin,
			cancelBooking:            cancelBooking.Handle,
			getUserBookings:          getUserBookings.Handle,
		},
		tokens:         tokenManager,
		roles:          userSvc,
		metrics:        metricsCollector,
		metricsPath:    cfg.Metrics.Path,
		requestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		logger:         log,
	})
	if cfg.Metrics.Enabled {
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

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
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
