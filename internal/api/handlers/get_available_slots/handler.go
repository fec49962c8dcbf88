package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate          = "A data é obrigatória."
	msgInvalidInput         = "Parâmetros inválidos. Use um ID de profissional válido e data YYYY-MM-DD."
	msgProfessionalNotFound = "Profissional não encontrado."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/professionals/{professionalId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /professionals/{id}/availability - Missing date: professional_id=%s", professionalID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrTimeout):
			h.logger.Error("GET /professionals/{id}/availability - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to get slots: professional_id=%s, date=%s, error=%v",
				professionalID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/availability - Slots retrieved successfully: professional_id=%s, date=%s, slots=%d",
		professionalID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
