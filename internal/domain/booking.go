package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a professional's slot for a service
type Booking struct {
	ID             string
	Date           time.Time
	Time           types.TimeString
	Status         BookingStatus
	ProfessionalID string
	UserID         string
	ServiceID      string
	CreatedAt      time.Time
}

// IsBinding returns true if the booking holds its slot
func (b *Booking) IsBinding() bool {
	return b.Status.IsBinding()
}

// IsBinding returns true for statuses that occupy a slot
func (s BookingStatus) IsBinding() bool {
	for _, binding := range BindingStatuses {
		if s == binding {
			return true
		}
	}
	return false
}

// BookingDetails бронирование с названиями связанных сущностей (для истории пользователя)
type BookingDetails struct {
	Booking
	ProfessionalName string
	ServiceName      string
}

// BookingsFilter фильтр списка бронирований, nil поля не применяются
type BookingsFilter struct {
	ProfessionalID *string
	UserID         *string
	Date           *time.Time
	Status         *BookingStatus
}
