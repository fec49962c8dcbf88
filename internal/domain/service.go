package domain

// Service represents an offered service and the professionals performing it
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	ProfessionalIDs []string
}

// PerformedBy проверяет, что услугу оказывает специалист
func (s *Service) PerformedBy(professionalID string) bool {
	for _, id := range s.ProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}
