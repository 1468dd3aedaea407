package get_available_slots

import (
	"fmt"
	"time"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/types"
)

// generateSlots генерирует список всех слотов дня
// Слоты идут с фиксированным шагом от startHour:00 и включают каждое
// время начала строго раньше endHour:00
//
// generateSlots(9, 18, 60) -> ["09:00", "10:00", ..., "17:00"]
func generateSlots(startHour, endHour, stepMinutes int) ([]types.TimeString, error) {
	if endHour <= startHour {
		return nil, fmt.Errorf("%w: start=%d, end=%d", ErrInvalidSlotRange, startHour, endHour)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step=%d minutes", ErrInvalidSlotRange, stepMinutes)
	}

	slots := make([]types.TimeString, 0)
	for minutes := startHour * 60; minutes < endHour*60; minutes += stepMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)))
	}

	return slots, nil
}

// markAvailability помечает каждый слот свободным или занятым
// Слот занят, только если какое-то бронирование приходится на тот же
// календарный день И его время (HH:MM) точно совпадает со слотом.
// Пересечения интервалов не учитываются - сравнение строго по равенству
func markAvailability(slots []types.TimeString, day time.Time, bookings []*domain.Booking) []domain.TimeSlot {
	taken := make(map[types.TimeString]bool, len(bookings))
	for _, booking := range bookings {
		if !isSameDay(booking.StartsAt, day) {
			continue
		}
		taken[types.NewTimeString(booking.StartsAt)] = true
	}

	result := make([]domain.TimeSlot, len(slots))
	for i, slot := range slots {
		result[i] = domain.TimeSlot{
			StartTime: slot,
			Available: !taken[slot],
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
