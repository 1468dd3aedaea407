package create_booking

import (
	"fmt"
	"time"

	"github.com/repairbooker/booking-service/internal/domain"
)

// validateRequest проверяет полноту заявки через доменную модель выбора.
// Заявка приходит целиком, поэтому поля заполняются напрямую, а
// Validate возвращает ошибку первого незаполненного шага.
// Обращений к хранилищу здесь нет - занятость слота проверяется
// в транзакции на шаге создания
func validateRequest(req *Request, now time.Time) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	startsAt := combineDateTime(req.Date, req.StartTime)
	if startsAt.Before(now) {
		return fmt.Errorf("%w: starts at %s is in the past", ErrInvalidDate, startsAt.Format(time.RFC3339))
	}

	sel := &domain.Selection{
		PhoneModel:    req.PhoneModel,
		RepairType:    req.RepairType,
		ScreenColor:   req.ScreenColor,
		StartsAt:      domain.NormalizeStartsAt(startsAt),
		DeliveryType:  req.DeliveryType,
		PickUpAddress: req.PickUpAddress,
	}

	return sel.Validate()
}
