package create_professional

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const (
	msgCreated             = "Profissional adicionado com sucesso!"
	msgInvalidRequestBody  = "Corpo da requisição inválido."
	msgAllFieldsRequired   = "Todos os campos são obrigatórios."
	msgInvalidInput        = "Dados do profissional inválidos."
	msgInvalidAvailability = "Disponibilidade inválida. Use dias da semana em inglês (monday...sunday) e horários HH:MM."
	msgCreateFailed        = "Erro ao adicionar profissional."
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

// Handle POST /api/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.HasAllFields() {
		h.logger.Warn("POST /professionals - Missing required fields")
		handlers.RespondBadRequest(w, msgAllFieldsRequired)
		return
	}

	id, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidAvailability):
			h.logger.Warn("POST /professionals - Invalid availability: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, professionals.ErrTimeout):
			h.logger.Error("POST /professionals - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("POST /professionals - Failed to create professional: name=%q, error=%v", req.Name, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created successfully: professional_id=%s", id)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, id)
}
