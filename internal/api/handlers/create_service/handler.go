package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/services"
)

const (
	msgCreated              = "Serviço adicionado com sucesso!"
	msgInvalidRequestBody   = "Corpo da requisição inválido."
	msgAllFieldsRequired    = "Todos os campos são obrigatórios."
	msgInvalidInput         = "Dados do serviço inválidos. O preço deve ser positivo e os IDs de profissionais válidos."
	msgProfessionalNotFound = "Profissional não encontrado."
	msgCreateFailed         = "Erro ao adicionar serviço."
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

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.HasAllFields() {
		h.logger.Warn("POST /services - Missing required fields")
		handlers.RespondBadRequest(w, msgAllFieldsRequired)
		return
	}

	id, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, services.ErrProfessionalNotFound):
			h.logger.Warn("POST /services - Professional not found: %v", err)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, services.ErrTimeout):
			h.logger.Error("POST /services - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("POST /services - Failed to create service: name=%q, error=%v", req.Name, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%s", id)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, id)
}
