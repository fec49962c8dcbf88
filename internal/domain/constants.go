package domain

import "sort"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPasswordLength       = 6
	MaxNameLength           = 255
	MaxDescriptionLength    = 2000
	MaxSpecializationLength = 255
)

// BindingStatuses статусы, занимающие слот
// Используется при проверке конфликтов и в частичном уникальном индексе bookings
var BindingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

func sortStrings(s []string) {
	sort.Strings(s)
}
