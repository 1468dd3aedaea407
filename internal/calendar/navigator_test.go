package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeProvider фиксированное время для тестов
type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

func newTestNavigator(now time.Time) *Navigator {
	return NewNavigator(&fakeTimeProvider{now: now})
}

func TestNavigator_InitialState(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, MonthView, nav.View())

	year, month := nav.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.September, month)

	_, ok := nav.SelectedDate()
	assert.False(t, ok)
}

func TestNavigator_NextPrevMonth(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, nav.NextMonth())
	year, month := nav.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.October, month)

	require.NoError(t, nav.PrevMonth())
	year, month = nav.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.September, month)
}

func TestNavigator_PrevMonth_BlockedIntoPast(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	// Курсор на текущем месяце, назад уходить нельзя
	assert.ErrorIs(t, nav.PrevMonth(), ErrPastMonth)

	year, month := nav.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.September, month)
}

func TestNavigator_NextMonth_AcrossYear(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, nav.NextMonth())
	year, month := nav.Cursor()
	assert.Equal(t, 2027, year)
	assert.Equal(t, time.January, month)
}

func TestNavigator_SelectDay(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, nav.SelectDay(20))
	assert.Equal(t, DayView, nav.View())

	date, ok := nav.SelectedDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), date)
}

func TestNavigator_SelectDay_Today(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 23, 0, 0, 0, time.UTC))

	// Сегодняшний день доступен даже поздно вечером
	assert.NoError(t, nav.SelectDay(15))
}

func TestNavigator_SelectDay_Past(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, nav.SelectDay(14), ErrPastDay)
	assert.Equal(t, MonthView, nav.View())
}

func TestNavigator_SelectDay_OutOfRange(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, nav.SelectDay(0), ErrInvalidDay)
	assert.ErrorIs(t, nav.SelectDay(31), ErrInvalidDay) // в сентябре 30 дней
}

func TestNavigator_GuardedTransitions(t *testing.T) {
	nav := newTestNavigator(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	// Из месячного вида нельзя вернуться назад
	assert.ErrorIs(t, nav.Back(), ErrNotInDayView)

	require.NoError(t, nav.SelectDay(20))

	// В дневном виде навигация по месяцам недоступна
	assert.ErrorIs(t, nav.NextMonth(), ErrNotInMonthView)
	assert.ErrorIs(t, nav.PrevMonth(), ErrNotInMonthView)
	assert.ErrorIs(t, nav.SelectDay(21), ErrNotInMonthView)

	require.NoError(t, nav.Back())
	assert.Equal(t, MonthView, nav.View())

	_, ok := nav.SelectedDate()
	assert.False(t, ok)
}

func TestBuildMonthPage_Offset(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Сентябрь 2026 начинается со вторника: смещение 1
	page, err := BuildMonthPage(2026, time.September, now)
	require.NoError(t, err)
	assert.Equal(t, 30, page.DayCount)
	assert.Equal(t, 1, page.FirstWeekdayOffset)

	// Ноябрь 2026 начинается с воскресенья: смещение 6
	page, err = BuildMonthPage(2026, time.November, now)
	require.NoError(t, err)
	assert.Equal(t, 30, page.DayCount)
	assert.Equal(t, 6, page.FirstWeekdayOffset)

	// Февраль 2027 начинается с понедельника: смещение 0
	page, err = BuildMonthPage(2027, time.February, now)
	require.NoError(t, err)
	assert.Equal(t, 28, page.DayCount)
	assert.Equal(t, 0, page.FirstWeekdayOffset)
}

func TestBuildMonthPage_PastDaysNotSelectable(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	page, err := BuildMonthPage(2026, time.September, now)
	require.NoError(t, err)
	require.Len(t, page.Days, 30)

	assert.False(t, page.Days[13].Selectable) // 14-е число
	assert.True(t, page.Days[14].Selectable)  // сегодня
	assert.True(t, page.Days[29].Selectable)  // 30-е число
}

func TestBuildMonthPage_PastMonth(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	_, err := BuildMonthPage(2026, time.August, now)
	assert.ErrorIs(t, err, ErrPastMonth)

	_, err = BuildMonthPage(2025, time.December, now)
	assert.ErrorIs(t, err, ErrPastMonth)
}

func TestBuildMonthPage_LeapFebruary(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	page, err := BuildMonthPage(2028, time.February, now)
	require.NoError(t, err)
	assert.Equal(t, 29, page.DayCount)
}
