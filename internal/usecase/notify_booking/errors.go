package notify_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("notify_booking: invalid input")

	// ErrInvalidEmail невалидный адрес электронной почты
	ErrInvalidEmail = errors.New("notify_booking: invalid email")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("notify_booking: booking not found")

	// ErrDispatchFailed сервис уведомлений не смог отправить письмо
	ErrDispatchFailed = errors.New("notify_booking: dispatch failed")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("notify_booking: internal error")
)
