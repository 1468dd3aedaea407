package get_calendar

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_calendar: invalid input")

	// ErrPastMonth запрошен полностью прошедший месяц
	ErrPastMonth = errors.New("get_calendar: month is in the past")
)
