package get_calendar

import "time"

// Request запрос месячного вида календаря
// Нулевые год и месяц означают текущий месяц
type Request struct {
	Year  int
	Month time.Month
}

// Day день месяца с признаком доступности для выбора
type Day struct {
	Number     int
	Selectable bool
}

// Response месячный вид календаря
type Response struct {
	Year               int
	Month              time.Month
	DayCount           int
	FirstWeekdayOffset int
	Days               []Day
}
