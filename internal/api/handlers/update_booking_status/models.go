package update_booking_status

// UpdateStatusRequest тело PUT /api/bookings/update-status
type UpdateStatusRequest struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// AdminStatusRequest тело PATCH /api/admin/bookings/{bookingId}/status
type AdminStatusRequest struct {
	Status string `json:"status"`
}
