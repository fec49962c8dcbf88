package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ListBookingsRequest фильтры списка бронирований, пустые строки не применяются
type ListBookingsRequest struct {
	ProfessionalID string
	UserID         string
	Date           string // YYYY-MM-DD
	Status         string // pending, confirmed, cancelled
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"` // "2025-10-15"
	Time           string `json:"time"` // "10:00"
	ProfessionalID string `json:"professionalId"`
	ServiceID      string `json:"serviceId"`
	UserID         string `json:"userId"`
	Status         string `json:"status"`
}

// UserBookingResponse бронирование в истории пользователя
type UserBookingResponse struct {
	BookingResponse
	ProfessionalName string    `json:"professionalName"`
	ServiceName      string    `json:"serviceName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		Date:           b.Date.Format(domain.DateFormat),
		Time:           b.Time.String(),
		ProfessionalID: b.ProfessionalID,
		ServiceID:      b.ServiceID,
		UserID:         b.UserID,
		Status:         string(b.Status),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainBookingDetails конвертирует историю пользователя
func FromDomainBookingDetails(details []*domain.BookingDetails) []*UserBookingResponse {
	result := make([]*UserBookingResponse, 0, len(details))
	for _, d := range details {
		result = append(result, &UserBookingResponse{
			BookingResponse:  *FromDomainBooking(&d.Booking),
			ProfessionalName: d.ProfessionalName,
			ServiceName:      d.ServiceName,
			CreatedAt:        d.CreatedAt,
		})
	}
	return result
}
