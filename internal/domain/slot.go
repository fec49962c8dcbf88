package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// AvailableSlot represents a configured slot of a professional on a date
type AvailableSlot struct {
	StartTime types.TimeString
	Available bool // false, когда слот занят активным бронированием
}
