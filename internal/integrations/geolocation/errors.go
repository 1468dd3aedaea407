package geolocation

import "errors"

var (
	// ErrPermissionDenied возвращается, когда клиент запретил доступ к геолокации
	ErrPermissionDenied = errors.New("geolocation client: permission denied")

	// ErrTimeout возвращается, когда провайдер не ответил за отведенное время
	ErrTimeout = errors.New("geolocation client: request timed out")

	// ErrLocationUnavailable возвращается, когда координаты недоступны
	ErrLocationUnavailable = errors.New("geolocation client: location unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geolocation client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geolocation client: invalid response")
)
