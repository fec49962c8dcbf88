package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание бронирования (значения как пришли от клиента)
type Request struct {
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	ProfessionalID string
	UserID         string
	ServiceID      string
	Status         string // слово из domain.CreateStatuses
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	Date           time.Time
	Time           types.TimeString
	Status         domain.BookingStatus
	ProfessionalID string
	UserID         string
	ServiceID      string
	CreatedAt      time.Time
}

// validated провалидированный запрос
type validated struct {
	date   time.Time
	time   types.TimeString
	status domain.BookingStatus
}
