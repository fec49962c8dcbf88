package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgUpdated            = "Senha atualizada com sucesso!"
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidPassword    = "A senha deve ter pelo menos 6 caracteres."
	msgMissingUserID      = "Usuário não autenticado."
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

// Handle PUT /api/users/me/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/me/password - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/me/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePassword(r.Context(), userID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/me/password - Invalid password: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidPassword)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users/me/password - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrTimeout):
			h.logger.Error("PUT /users/me/password - Deadline exceeded: user_id=%s", userID)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("PUT /users/me/password - Failed to change password: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/me/password - Password changed: user_id=%s", userID)
	handlers.RespondMessage(w, http.StatusOK, msgUpdated, "")
}
