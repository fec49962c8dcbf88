package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
)

const (
	msgCreated              = "Agendamento adicionado com sucesso!"
	msgInvalidRequestBody   = "Corpo da requisição inválido."
	msgAllFieldsRequired    = "Todos os campos são obrigatórios."
	msgInvalidInput         = "Dados do agendamento inválidos. Use data YYYY-MM-DD, horário HH:MM e IDs válidos."
	msgDateInPast           = "Não é possível agendar em uma data passada."
	msgProfessionalNotFound = "Profissional não encontrado."
	msgUserNotFound         = "Usuário não encontrado."
	msgServiceNotFound      = "Serviço não encontrado."
	msgServiceNotPerformed  = "O profissional não realiza este serviço."
	msgTimeNotAvailable     = "Horário fora da disponibilidade do profissional."
	msgSlotTaken            = "Horário já foi agendado."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.HasAllFields() {
		h.logger.Warn("POST /bookings - Missing required fields")
		handlers.RespondBadRequest(w, msgAllFieldsRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrTimeNotAvailable):
			h.logger.Warn("POST /bookings - Time not in availability: professional_id=%s, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTimeNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotPerformed):
			h.logger.Warn("POST /bookings - Service not performed: professional_id=%s, service_id=%s",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotPerformed)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: professional_id=%s, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrTimeout):
			h.logger.Error("POST /bookings - Deadline exceeded: %v", err)
			handlers.RespondTimeout(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: professional_id=%s, user_id=%s, error=%v",
				req.ProfessionalID, req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, professional_id=%s, date=%s, time=%s",
		result.ID, result.ProfessionalID, req.Date, result.Time)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, result.ID)
}
