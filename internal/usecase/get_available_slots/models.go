package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса слотов специалиста на дату
type Request struct {
	ProfessionalID string // UUID специалиста
	Date           string // Дата в формате YYYY-MM-DD
}

// Response слоты специалиста на дату
type Response struct {
	ProfessionalID string
	Date           time.Time
	Weekday        string                 // "monday"
	Slots          []domain.AvailableSlot // Все слоты расписания, Available=false для занятых
}
