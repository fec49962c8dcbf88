package domain

// StatusVocabulary набор слов статуса, допустимых в конкретной точке вызова,
// с переводом в каноничный BookingStatus
//
// Исторически разные формы писали разные слова (marcado/cancelado, approved/canceled),
// в хранилище попадают только pending, confirmed и cancelled
type StatusVocabulary map[string]BookingStatus

var (
	// CreateStatuses статусы, с которыми можно создать бронирование
	CreateStatuses = StatusVocabulary{
		"pending":    StatusPending,
		"confirmed":  StatusConfirmed,
		"marcado":    StatusConfirmed,
		"confirmado": StatusConfirmed,
		"approved":   StatusConfirmed,
	}

	// UserStatuses пользователь может только отменить своё бронирование
	UserStatuses = StatusVocabulary{
		"cancelled": StatusCancelled,
		"cancelado": StatusCancelled,
	}

	// AdminStatuses статусы формы администратора
	AdminStatuses = StatusVocabulary{
		"confirmed":  StatusConfirmed,
		"marcado":    StatusConfirmed,
		"confirmado": StatusConfirmed,
		"cancelled":  StatusCancelled,
		"cancelado":  StatusCancelled,
	}

	// LegacyStatuses статусы эндпоинта PUT /api/bookings/update-status
	LegacyStatuses = StatusVocabulary{
		"approved": StatusConfirmed,
		"canceled": StatusCancelled,
	}
)

// Resolve переводит слово в каноничный статус, слово сравнивается точно
func (v StatusVocabulary) Resolve(word string) (BookingStatus, bool) {
	status, ok := v[word]
	return status, ok
}

// Words возвращает допустимые слова (для сообщений об ошибке)
func (v StatusVocabulary) Words() []string {
	words := make([]string, 0, len(v))
	for w := range v {
		words = append(words, w)
	}
	sortStrings(words)
	return words
}

// ParseBookingStatus проверяет каноничное значение статуса (фильтры, данные из БД)
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch status := BookingStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}
