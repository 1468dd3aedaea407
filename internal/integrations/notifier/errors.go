package notifier

import "errors"

var (
	// ErrDispatchFailed возвращается, когда диспетчер отклонил отправку
	// (status=false в ответе). Бронирование при этом остается в силе
	ErrDispatchFailed = errors.New("notifier client: dispatch failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
