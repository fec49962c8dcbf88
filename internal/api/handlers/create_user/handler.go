package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgCreated            = "Usuario adicionado com sucesso!"
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgAllFieldsRequired  = "Todos os campos são obrigatórios."
	msgInvalidInput       = "Dados do usuário inválidos. Verifique o email, a senha (mínimo 6 caracteres) e o papel (user ou admin)."
	msgEmailTaken         = "Este email já está cadastrado."
	msgAdminTokenRequired = "Token de administrador obrigatório para criar um administrador."
	msgAdminOnly          = "Apenas administradores podem criar administradores."
	msgCreateFailed       = "Erro ao adicionar usuario."
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

// Handle POST /api/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.HasAllFields() {
		h.logger.Warn("POST /users - Missing required fields")
		handlers.RespondBadRequest(w, msgAllFieldsRequired)
		return
	}

	callerRole, authenticated := middleware.GetRole(r.Context())
	svcReq := req.ToServiceRequest()
	svcReq.CallerRole = callerRole

	id, err := h.service.Create(r.Context(), svcReq)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAdminRoleRequired) && !authenticated:
			h.logger.Warn("POST /users - Anonymous admin signup rejected: email=%q", req.Email)
			handlers.RespondUnauthorized(w, msgAdminTokenRequired)

		case errors.Is(err, users.ErrAdminRoleRequired):
			userID, _ := middleware.GetUserID(r.Context())
			h.logger.Warn("POST /users - Admin signup by non-admin rejected: caller_id=%s, caller_role=%s", userID, callerRole)
			handlers.RespondForbidden(w, msgAdminOnly)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email already registered: email=%q", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrTimeout):
			h.logger.Error("POST /users - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("POST /users - Failed to create user: email=%q, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%s", id)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, id)
}
