package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("create_booking: invalid input")

	// ErrInvalidDate дата бронирования в прошлом или отсутствует
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrSlotTaken слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrPricingUnavailable цена для пары модель/тип ремонта не найдена
	ErrPricingUnavailable = errors.New("create_booking: pricing unavailable")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_booking: internal error")
)
