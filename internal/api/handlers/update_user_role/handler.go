package update_user_role

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidRole        = "Status inválido. Use 'admin' ou 'user'."
	msgUserNotFound       = "Usuário não encontrado."
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

// Handle PUT /api/admin/users/{userId}/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/users/{id}/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /admin/users/{id}/role - Invalid input: user_id=%q, role=%q", userID, req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /admin/users/{id}/role - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrTimeout):
			h.logger.Error("PUT /admin/users/{id}/role - Deadline exceeded: user_id=%s", userID)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("PUT /admin/users/{id}/role - Failed to update role: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/users/{id}/role - Role updated: user_id=%s, role=%q", userID, req.Role)
	handlers.RespondMessage(w, http.StatusOK, fmt.Sprintf("Usuario atualizado para '%s' com sucesso!", req.Role), "")
}
