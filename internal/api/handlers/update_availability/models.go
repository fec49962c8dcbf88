package update_availability

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Availability map[string][]string `json:"availability"`
}
