package calculate_price

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("calculate_price: invalid input")

	// ErrPricingUnavailable цена для пары модель/тип ремонта не найдена
	// Отличается от нулевой цены: ноль - валидное значение прайс-листа
	ErrPricingUnavailable = errors.New("calculate_price: pricing unavailable")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("calculate_price: internal error")
)
