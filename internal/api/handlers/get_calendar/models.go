package get_calendar

import (
	getCalendar "github.com/repairbooker/booking-service/internal/usecase/get_calendar"
)

// CalendarDay день месяца с признаком доступности
type CalendarDay struct {
	Number     int  `json:"number"`
	Selectable bool `json:"selectable"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year               int           `json:"year"`
	Month              int           `json:"month"`
	DayCount           int           `json:"dayCount"`
	FirstWeekdayOffset int           `json:"firstWeekdayOffset"`
	Days               []CalendarDay `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{Number: d.Number, Selectable: d.Selectable}
	}

	return &CalendarResponse{
		Year:               resp.Year,
		Month:              int(resp.Month),
		DayCount:           resp.DayCount,
		FirstWeekdayOffset: resp.FirstWeekdayOffset,
		Days:               days,
	}
}
