package check_delivery

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("check_delivery: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("check_delivery: internal error")
)
