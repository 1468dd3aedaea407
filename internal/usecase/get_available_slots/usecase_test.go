package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairbooker/booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDay(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, SlotsConfig{StartHour: 9, EndHour: 18, StepMinutes: 60}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{StartsAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)},
			{StartsAt: time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)},
		},
	}

	resp, err := newTestUseCase(repo, now).Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)

	available := 0
	for _, slot := range resp.Slots {
		if slot.Available {
			available++
		}
		switch slot.StartTime {
		case "10:00", "14:00":
			assert.False(t, slot.Available, "slot %s should be taken", slot.StartTime)
		default:
			assert.True(t, slot.Available, "slot %s should be free", slot.StartTime)
		}
	}
	assert.Equal(t, 7, available)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	now := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{}

	resp, err := newTestUseCase(repo, now).Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ZeroDate(t *testing.T) {
	now := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(&fakeBookingRepo{}, now).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	now := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{err: errors.New("connection refused")}

	_, err := newTestUseCase(repo, now).Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)
}
