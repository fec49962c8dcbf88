package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

// routeHandlers http обработчики всех эндпоинтов API
type routeHandlers struct {
	createService            http.HandlerFunc
	listServices             http.HandlerFunc
	createProfessional       http.HandlerFunc
	listProfessionals        http.HandlerFunc
	getAvailableSlots        http.HandlerFunc
	updateAvailability       http.HandlerFunc
	createUser               http.HandlerFunc
	login                    http.HandlerFunc
	changePassword           http.HandlerFunc
	listUsers                http.HandlerFunc
	updateUserRole           http.HandlerFunc
	deleteUser               http.HandlerFunc
	createBooking            http.HandlerFunc
	listBookings             http.HandlerFunc
	updateBookingStatus      http.HandlerFunc
	adminUpdateBookingStatus http.HandlerFunc
	cancelBooking            http.HandlerFunc
	getUserBookings          http.HandlerFunc
}

type routerConfig struct {
	handlers       routeHandlers
	tokens         middleware.TokenParser
	roles          middleware.RoleChecker
	metrics        *metrics.Metrics // nil - метрики выключены
	metricsPath    string
	requestTimeout time.Duration
	logger         middleware.Logger
}

func newRouter(cfg routerConfig) *mux.Router {
	h := cfg.handlers
	r := mux.NewRouter()

	if cfg.metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.metrics))
		r.Handle(cfg.metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Timeout(cfg.requestTimeout))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/services", h.createService).Methods(http.MethodPost)
	api.HandleFunc("/services", h.listServices).Methods(http.MethodGet)
	api.HandleFunc("/professionals", h.createProfessional).Methods(http.MethodPost)
	api.HandleFunc("/professionals", h.listProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/availability", h.getAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.createBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.listBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/update-status", h.updateBookingStatus).Methods(http.MethodPut)

	// Регистрация открыта, но роль admin назначает только администратор с токеном
	api.Handle("/users", middleware.OptionalAuth(cfg.tokens, cfg.logger)(h.createUser)).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.tokens, cfg.logger))

	protected.HandleFunc("/users/me/password", h.changePassword).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/bookings", h.getUserBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", h.cancelBooking).Methods(http.MethodPatch)

	// --- Администрирование ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(cfg.roles, cfg.logger))

	admin.HandleFunc("/professionals/{professionalId}/availability", h.updateAvailability).Methods(http.MethodPut)
	admin.HandleFunc("/admin/bookings/{bookingId}/status", h.adminUpdateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/users", h.listUsers).Methods(http.MethodGet)
	admin.HandleFunc("/admin/users/{userId}/role", h.updateUserRole).Methods(http.MethodPut)
	admin.HandleFunc("/admin/users/{userId}", h.deleteUser).Methods(http.MethodDelete)

	return r
}
