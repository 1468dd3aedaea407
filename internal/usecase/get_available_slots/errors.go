package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidSlotRange возвращается при некорректной конфигурации рабочих часов
	ErrInvalidSlotRange = errors.New("get_available_slots: end hour must be after start hour")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
