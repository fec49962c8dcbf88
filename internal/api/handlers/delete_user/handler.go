package delete_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgDeleted      = "Usuario deletado com sucesso!"
	msgInvalidID    = "ID do usuário inválido."
	msgUserNotFound = "Usuário não encontrado."
	msgHasBookings  = "O usuário possui agendamentos e não pode ser removido."
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

// Handle DELETE /api/admin/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	err := h.service.Delete(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/users/{id} - Invalid user ID: %q", userID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /admin/users/{id} - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrUserHasBookings):
			h.logger.Warn("DELETE /admin/users/{id} - User has bookings: user_id=%s", userID)
			handlers.RespondConflict(w, msgHasBookings)

		case errors.Is(err, users.ErrTimeout):
			h.logger.Error("DELETE /admin/users/{id} - Deadline exceeded: user_id=%s", userID)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("DELETE /admin/users/{id} - Failed to delete user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/users/{id} - User deleted: user_id=%s", userID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted, "")
}
