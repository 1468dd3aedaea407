package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(now).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, time.September, resp.Month)
	assert.Equal(t, 30, resp.DayCount)
	require.Len(t, resp.Days, 30)

	assert.False(t, resp.Days[13].Selectable) // 14-е число уже прошло
	assert.True(t, resp.Days[14].Selectable)  // сегодня
}

func TestUseCase_Execute_FutureMonth(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(now).Execute(context.Background(), &Request{
		Year:  2026,
		Month: time.November,
	})
	require.NoError(t, err)

	assert.Equal(t, time.November, resp.Month)
	for _, day := range resp.Days {
		assert.True(t, day.Selectable)
	}
}

func TestUseCase_Execute_PastMonth(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(now).Execute(context.Background(), &Request{
		Year:  2026,
		Month: time.August,
	})
	assert.ErrorIs(t, err, ErrPastMonth)
}

func TestUseCase_Execute_YearWithoutMonth(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(now).Execute(context.Background(), &Request{Year: 2026})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_MonthOutOfRange(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(now).Execute(context.Background(), &Request{
		Year:  2026,
		Month: time.Month(13),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
