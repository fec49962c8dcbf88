package update_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const (
	msgUpdated              = "Disponibilidade atualizada com sucesso!"
	msgInvalidRequestBody   = "Corpo da requisição inválido."
	msgAvailabilityRequired = "A disponibilidade é obrigatória."
	msgInvalidID            = "ID do profissional inválido."
	msgInvalidAvailability  = "Disponibilidade inválida. Use dias da semana em inglês (monday...sunday) e horários HH:MM."
	msgNotFound             = "Profissional não encontrado."
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

// Handle PUT /api/professionals/{professionalId}/availability
// Расписание заменяется целиком, существующие бронирования не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Availability == nil {
		h.logger.Warn("PUT /professionals/{id}/availability - Missing availability: professional_id=%s", professionalID)
		handlers.RespondBadRequest(w, msgAvailabilityRequired)
		return
	}

	err := h.service.UpdateAvailability(r.Context(), professionalID, req.Availability)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidAvailability):
			h.logger.Warn("PUT /professionals/{id}/availability - Invalid availability: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/availability - Invalid professional ID: %q", professionalID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/availability - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, professionals.ErrTimeout):
			h.logger.Error("PUT /professionals/{id}/availability - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("PUT /professionals/{id}/availability - Failed to update: professional_id=%s, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/availability - Availability updated successfully: professional_id=%s",
		professionalID)
	handlers.RespondMessage(w, http.StatusOK, msgUpdated, "")
}
