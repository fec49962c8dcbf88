package update_booking_status

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgFieldsRequired     = "O ID da reserva e o status são obrigatórios."
	msgStatusRequired     = "O status é obrigatório."
	msgInvalidBookingID   = "ID da reserva inválido."
	msgNotFound           = "Reserva não encontrada."
	msgSlotTaken          = "Horário já foi agendado."
	msgUpdateFailed       = "Erro ao atualizar status da reserva."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/update-status
// Принимает только approved и canceled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/update-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.BookingID) == "" || strings.TrimSpace(req.Status) == "" {
		h.logger.Warn("PUT /bookings/update-status - Missing bookingId or status")
		handlers.RespondBadRequest(w, msgFieldsRequired)
		return
	}

	h.update(w, r, "PUT /bookings/update-status", req.BookingID, req.Status, domain.LegacyStatuses)
}

// HandleAdmin PATCH /api/admin/bookings/{bookingId}/status
// Принимает словарь формы администратора (marcado, cancelado)
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req AdminStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Status) == "" {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Missing status: booking_id=%s", bookingID)
		handlers.RespondBadRequest(w, msgStatusRequired)
		return
	}

	h.update(w, r, "PATCH /admin/bookings/{id}/status", bookingID, req.Status, domain.AdminStatuses)
}

func (h *Handler) update(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	bookingID string,
	status string,
	vocabulary domain.StatusVocabulary,
) {
	err := h.service.UpdateStatus(r.Context(), bookingID, status, vocabulary)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("%s - Invalid status: booking_id=%s, status=%q", route, bookingID, status)
			handlers.RespondBadRequest(w, invalidStatusMessage(vocabulary))

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid booking ID: %q", route, bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%s", route, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrSlotTaken):
			h.logger.Warn("%s - Slot already taken: booking_id=%s", route, bookingID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookings.ErrTimeout):
			h.logger.Error("%s - Deadline exceeded: booking_id=%s", route, bookingID)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("%s - Failed to update status: booking_id=%s, error=%v", route, bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("%s - Status updated successfully: booking_id=%s, status=%q", route, bookingID, status)
	handlers.RespondMessage(w, http.StatusOK, fmt.Sprintf("Reserva %s com sucesso!", status), "")
}

func invalidStatusMessage(vocabulary domain.StatusVocabulary) string {
	words := vocabulary.Words()
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = "'" + word + "'"
	}
	return fmt.Sprintf("Status inválido. Use %s.", strings.Join(quoted, " ou "))
}
