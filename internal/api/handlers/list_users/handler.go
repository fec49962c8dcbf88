package list_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgListFailed = "Erro ao recuperar usuários."
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, users.ErrTimeout) {
			h.logger.Error("GET /admin/users - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)
			return
		}
		h.logger.Error("GET /admin/users - Failed to list users: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	h.logger.Info("GET /admin/users - Users retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
