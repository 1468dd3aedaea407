package domain

import "github.com/repairbooker/booking-service/pkg/types"

// TimeSlot represents a bookable time slot for a specific calendar day
// Эфемерная структура: пересчитывается при каждом входе в дневной вид
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}
