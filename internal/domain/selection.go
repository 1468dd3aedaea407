package domain

import (
	"errors"
	"time"
)

// Ошибки незавершенного выбора
// Каждая соответствует конкретному непройденному шагу мастера
var (
	ErrPhoneModelNotSet        = errors.New("selection: phone model is not set")
	ErrUnknownPhoneModel       = errors.New("selection: unknown phone model")
	ErrRepairTypeNotSet        = errors.New("selection: repair type is not set")
	ErrUnknownRepairType       = errors.New("selection: unknown repair type")
	ErrScreenColorNotSet       = errors.New("selection: screen color is required for screen repairs")
	ErrUnknownScreenColor      = errors.New("selection: unknown screen color")
	ErrDateNotSet              = errors.New("selection: date and time are not set")
	ErrDeliveryTypeNotSet      = errors.New("selection: delivery type is not set")
	ErrUnknownDeliveryType     = errors.New("selection: unknown delivery type")
	ErrPickUpAddressIncomplete = errors.New("selection: pick-up requires a complete address")
	ErrStepNotReady            = errors.New("selection: previous steps are not complete")
)

// SelectionStep шаг мастера оформления бронирования
type SelectionStep string

const (
	StepPhoneModel    SelectionStep = "phone"
	StepRepairType    SelectionStep = "repair_type"
	StepScreenColor   SelectionStep = "screen_color"
	StepDateTime      SelectionStep = "date_time"
	StepDeliveryType  SelectionStep = "delivery_type"
	StepPickUpAddress SelectionStep = "pick_up_address"
	StepComplete      SelectionStep = "complete"
)

// Selection незавершенное бронирование, собираемое по шагам
// Переходы между шагами охраняются: шаг доступен, только когда
// заполнены все его предпосылки. Никогда не сохраняется частично.
type Selection struct {
	PhoneModel    string
	RepairType    RepairType
	ScreenColor   *ScreenColor
	StartsAt      time.Time
	DeliveryType  DeliveryType
	PickUpAddress *Address
}

// CurrentStep возвращает первый незаполненный шаг мастера
func (s *Selection) CurrentStep() SelectionStep {
	switch {
	case s.PhoneModel == "":
		return StepPhoneModel
	case s.RepairType == "":
		return StepRepairType
	case s.RepairType.RequiresScreenColor() && s.ScreenColor == nil:
		return StepScreenColor
	case s.StartsAt.IsZero():
		return StepDateTime
	case s.DeliveryType == "":
		return StepDeliveryType
	case s.DeliveryType == DeliveryPickUp && (s.PickUpAddress == nil || !s.PickUpAddress.IsComplete()):
		return StepPickUpAddress
	default:
		return StepComplete
	}
}

// IsComplete возвращает true, если выбор полностью заполнен
func (s *Selection) IsComplete() bool {
	return s.CurrentStep() == StepComplete
}

// SetPhoneModel устанавливает модель телефона
// Сбрасывает тип ремонта и цвет экрана: цены зависят от модели
func (s *Selection) SetPhoneModel(model string) error {
	if model == "" {
		return ErrPhoneModelNotSet
	}
	if !IsKnownPhoneModel(model) {
		return ErrUnknownPhoneModel
	}

	s.PhoneModel = model
	s.RepairType = ""
	s.ScreenColor = nil
	return nil
}

// SetRepairType устанавливает тип ремонта
// Доступно только после выбора модели телефона
func (s *Selection) SetRepairType(repairType RepairType) error {
	if s.PhoneModel == "" {
		return ErrStepNotReady
	}
	if !repairType.IsValid() {
		return ErrUnknownRepairType
	}

	s.RepairType = repairType
	if !repairType.RequiresScreenColor() {
		s.ScreenColor = nil
	}
	return nil
}

// SetScreenColor устанавливает цвет экрана
// Доступно только для ремонта экрана
func (s *Selection) SetScreenColor(color ScreenColor) error {
	if !s.RepairType.RequiresScreenColor() {
		return ErrStepNotReady
	}
	if !color.IsValid() {
		return ErrUnknownScreenColor
	}

	s.ScreenColor = &color
	return nil
}

// SetStartsAt устанавливает дату и время слота
// Доступно после завершения шагов ремонта (включая цвет экрана)
func (s *Selection) SetStartsAt(t time.Time) error {
	if s.RepairType == "" || (s.RepairType.RequiresScreenColor() && s.ScreenColor == nil) {
		return ErrStepNotReady
	}
	if t.IsZero() {
		return ErrDateNotSet
	}

	s.StartsAt = NormalizeStartsAt(t)
	return nil
}

// SetDeliveryType устанавливает способ доставки
// Доступно после выбора даты
func (s *Selection) SetDeliveryType(deliveryType DeliveryType) error {
	if s.StartsAt.IsZero() {
		return ErrStepNotReady
	}
	if !deliveryType.IsValid() {
		return ErrUnknownDeliveryType
	}

	s.DeliveryType = deliveryType
	if deliveryType != DeliveryPickUp {
		s.PickUpAddress = nil
	}
	return nil
}

// SetPickUpAddress устанавливает адрес забора устройства
// Доступно только для pick-up
func (s *Selection) SetPickUpAddress(address Address) error {
	if s.DeliveryType != DeliveryPickUp {
		return ErrStepNotReady
	}
	if !address.IsComplete() {
		return ErrPickUpAddressIncomplete
	}

	s.PickUpAddress = &address
	return nil
}

// Validate проверяет завершенность выбора и возвращает ошибку
// первого незаполненного поля. Вызывается перед любой попыткой записи.
func (s *Selection) Validate() error {
	if s.PhoneModel == "" {
		return ErrPhoneModelNotSet
	}
	if !IsKnownPhoneModel(s.PhoneModel) {
		return ErrUnknownPhoneModel
	}
	if s.RepairType == "" {
		return ErrRepairTypeNotSet
	}
	if !s.RepairType.IsValid() {
		return ErrUnknownRepairType
	}
	if s.RepairType.RequiresScreenColor() {
		if s.ScreenColor == nil {
			return ErrScreenColorNotSet
		}
		if !s.ScreenColor.IsValid() {
			return ErrUnknownScreenColor
		}
	}
	if s.StartsAt.IsZero() {
		return ErrDateNotSet
	}
	if s.DeliveryType == "" {
		return ErrDeliveryTypeNotSet
	}
	if !s.DeliveryType.IsValid() {
		return ErrUnknownDeliveryType
	}
	if s.DeliveryType == DeliveryPickUp {
		if s.PickUpAddress == nil || !s.PickUpAddress.IsComplete() {
			return ErrPickUpAddressIncomplete
		}
	}
	return nil
}
