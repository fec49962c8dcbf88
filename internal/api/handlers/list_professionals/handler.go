package list_professionals

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const (
	msgInvalidServiceID = "ID do serviço inválido."
	msgListFailed       = "Erro ao recuperar profissionais."
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/professionals
// Query params: serviceId (опционально) оставляет только специалистов, оказывающих услугу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := strings.TrimSpace(r.URL.Query().Get("serviceId"))

	result, err := h.service.List(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("GET /professionals - Invalid service ID: %q", serviceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, professionals.ErrTimeout):
			h.logger.Error("GET /professionals - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("GET /professionals - Failed to list professionals: service_id=%q, error=%v", serviceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		}
		return
	}

	h.logger.Info("GET /professionals - Professionals retrieved successfully: service_id=%q, count=%d", serviceID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
