package create_booking

import (
	"strings"

	createBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date           string `json:"date"` // "2025-10-15"
	Time           string `json:"time"` // "10:00"
	ProfessionalID string `json:"professionalId"`
	UserID         string `json:"userId"`
	ServiceID      string `json:"serviceId"`
	Status         string `json:"status"`
}

// HasAllFields проверяет, что все поля переданы
func (r *CreateBookingRequest) HasAllFields() bool {
	for _, v := range []string{r.Date, r.Time, r.ProfessionalID, r.UserID, r.ServiceID, r.Status} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:           r.Date,
		Time:           r.Time,
		ProfessionalID: r.ProfessionalID,
		UserID:         r.UserID,
		ServiceID:      r.ServiceID,
		Status:         r.Status,
	}
}
