package calendar

import (
	"errors"
	"time"
)

var (
	// ErrNotInMonthView возвращается при навигации по месяцам вне месячного вида
	ErrNotInMonthView = errors.New("calendar: navigation is only available in month view")

	// ErrNotInDayView возвращается при попытке вернуться из месячного вида
	ErrNotInDayView = errors.New("calendar: already in month view")

	// ErrPastMonth возвращается при попытке уйти в месяц раньше текущего
	ErrPastMonth = errors.New("calendar: month is in the past")

	// ErrPastDay возвращается при выборе дня раньше сегодняшнего
	ErrPastDay = errors.New("calendar: day is in the past")

	// ErrInvalidDay возвращается при выборе дня вне границ месяца
	ErrInvalidDay = errors.New("calendar: day is out of month range")
)

// View состояние навигатора календаря
type View string

const (
	MonthView View = "month"
	DayView   View = "day"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Day день месяца с признаком доступности для выбора
type Day struct {
	Number     int
	Selectable bool
}

// MonthPage данные месячного вида: количество дней, смещение первого дня
// недели (сетка начинается с понедельника) и доступность каждого дня
type MonthPage struct {
	Year               int
	Month              time.Month
	DayCount           int
	FirstWeekdayOffset int // количество пустых ячеек перед 1-м числом
	Days               []Day
}

// Navigator конечный автомат календаря: месячный и дневной вид
// Не зависит от данных бронирований. Начальное состояние - месячный вид
// на текущем месяце. Дни и месяцы строго раньше текущей даты недоступны
// для выбора и навигации.
type Navigator struct {
	view         View
	cursor       time.Time // первое число месяца под курсором
	selectedDay  int       // выбранный день (только в DayView)
	timeProvider TimeProvider
}

// NewNavigator создает навигатор в месячном виде на текущем месяце
func NewNavigator(timeProvider TimeProvider) *Navigator {
	now := timeProvider.Now()
	return &Navigator{
		view:         MonthView,
		cursor:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		timeProvider: timeProvider,
	}
}

// View возвращает текущее состояние навигатора
func (n *Navigator) View() View {
	return n.view
}

// Cursor возвращает год и месяц под курсором
func (n *Navigator) Cursor() (int, time.Month) {
	return n.cursor.Year(), n.cursor.Month()
}

// SelectedDate возвращает дату, зафиксированную в дневном виде
// Второй результат false в месячном виде
func (n *Navigator) SelectedDate() (time.Time, bool) {
	if n.view != DayView {
		return time.Time{}, false
	}
	return time.Date(n.cursor.Year(), n.cursor.Month(), n.selectedDay, 0, 0, 0, 0, n.cursor.Location()), true
}

// NextMonth сдвигает курсор на месяц вперед
// Доступно только в месячном виде
func (n *Navigator) NextMonth() error {
	if n.view != MonthView {
		return ErrNotInMonthView
	}
	n.cursor = n.cursor.AddDate(0, 1, 0)
	return nil
}

// PrevMonth сдвигает курсор на месяц назад
// Доступно только в месячном виде; уход в прошлое относительно
// текущего месяца запрещен
func (n *Navigator) PrevMonth() error {
	if n.view != MonthView {
		return ErrNotInMonthView
	}

	prev := n.cursor.AddDate(0, -1, 0)
	if isPastMonth(prev, n.timeProvider.Now()) {
		return ErrPastMonth
	}

	n.cursor = prev
	return nil
}

// SelectDay фиксирует день и переводит навигатор в дневной вид
// Дни строго раньше сегодняшнего выбрать нельзя
func (n *Navigator) SelectDay(day int) error {
	if n.view != MonthView {
		return ErrNotInMonthView
	}

	if day < 1 || day > daysInMonth(n.cursor.Year(), n.cursor.Month()) {
		return ErrInvalidDay
	}

	now := n.timeProvider.Now()
	date := time.Date(n.cursor.Year(), n.cursor.Month(), day, 0, 0, 0, 0, n.cursor.Location())
	if isPastDay(date, now) {
		return ErrPastDay
	}

	n.selectedDay = day
	n.view = DayView
	return nil
}

// Back возвращает навигатор из дневного вида в месячный
func (n *Navigator) Back() error {
	if n.view != DayView {
		return ErrNotInDayView
	}
	n.selectedDay = 0
	n.view = MonthView
	return nil
}

// Page возвращает данные месячного вида для месяца под курсором
func (n *Navigator) Page() MonthPage {
	page, _ := BuildMonthPage(n.cursor.Year(), n.cursor.Month(), n.timeProvider.Now())
	return page
}

// BuildMonthPage строит месячный вид для произвольного месяца
// Месяцы строго раньше текущего подавляются целиком (ErrPastMonth)
func BuildMonthPage(year int, month time.Month, now time.Time) (MonthPage, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	if isPastMonth(first, now) {
		return MonthPage{}, ErrPastMonth
	}

	count := daysInMonth(year, month)

	days := make([]Day, count)
	for i := range days {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, now.Location())
		days[i] = Day{
			Number:     i + 1,
			Selectable: !isPastDay(date, now),
		}
	}

	return MonthPage{
		Year:     year,
		Month:    month,
		DayCount: count,
		// Сетка начинается с понедельника: Monday -> 0, Sunday -> 6
		FirstWeekdayOffset: (int(first.Weekday()) + 6) % 7,
		Days:               days,
	}, nil
}

func daysInMonth(year int, month time.Month) int {
	// Нулевой день следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isPastMonth(date, now time.Time) bool {
	return date.Year() < now.Year() ||
		(date.Year() == now.Year() && date.Month() < now.Month())
}

func isPastDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
