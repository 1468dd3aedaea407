package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/types"
)

func TestGenerateSlots_DefaultWorkingHours(t *testing.T) {
	slots, err := generateSlots(9, 18, 60)
	require.NoError(t, err)

	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateSlots_HalfHourStep(t *testing.T) {
	slots, err := generateSlots(9, 11, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_EndBeforeStart(t *testing.T) {
	_, err := generateSlots(18, 9, 60)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)

	_, err = generateSlots(9, 9, 60)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestGenerateSlots_InvalidStep(t *testing.T) {
	_, err := generateSlots(9, 18, 0)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)

	_, err = generateSlots(9, 18, -15)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestMarkAvailability_ExactMatchOnly(t *testing.T) {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00", "10:00", "11:00"}

	bookings := []*domain.Booking{
		{StartsAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)},
	}

	marked := markAvailability(slots, day, bookings)
	require.Len(t, marked, 3)

	assert.True(t, marked[0].Available)
	assert.False(t, marked[1].Available)
	assert.True(t, marked[2].Available)
}

func TestMarkAvailability_OffGridBookingBlocksNothing(t *testing.T) {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00", "10:00"}

	// 10:30 не совпадает ни с одним слотом: пересечения интервалов
	// не учитываются
	bookings := []*domain.Booking{
		{StartsAt: time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)},
	}

	marked := markAvailability(slots, day, bookings)
	assert.True(t, marked[0].Available)
	assert.True(t, marked[1].Available)
}

func TestMarkAvailability_OtherDayIgnored(t *testing.T) {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"10:00"}

	// То же время, но другой день
	bookings := []*domain.Booking{
		{StartsAt: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)},
	}

	marked := markAvailability(slots, day, bookings)
	assert.True(t, marked[0].Available)
}

func TestMarkAvailability_NoBookings(t *testing.T) {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00", "10:00"}

	marked := markAvailability(slots, day, nil)
	for _, slot := range marked {
		assert.True(t, slot.Available)
	}
}
