package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/services"
)

const (
	msgListFailed = "Erro ao recuperar serviços."
)

type Handler struct {
	service ServiceCatalog
	logger  Logger
}

func NewHandler(service ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrTimeout) {
			h.logger.Error("GET /services - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)
			return
		}
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
