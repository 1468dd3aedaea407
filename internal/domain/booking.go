package domain

import "time"

// RepairType represents the kind of repair being booked
type RepairType string

const (
	RepairScreen          RepairType = "screen"
	RepairBackCamera      RepairType = "back camera"
	RepairFrontCamera     RepairType = "front camera"
	RepairBattery         RepairType = "battery"
	RepairBackCameraGlass RepairType = "back camera glass"
)

// IsValid returns true if the repair type is one of the known types
func (r RepairType) IsValid() bool {
	switch r {
	case RepairScreen, RepairBackCamera, RepairFrontCamera, RepairBattery, RepairBackCameraGlass:
		return true
	default:
		return false
	}
}

// RequiresScreenColor returns true if the repair requires a screen color choice
func (r RepairType) RequiresScreenColor() bool {
	return r == RepairScreen
}

// DeliveryType represents how the device reaches the workshop
type DeliveryType string

const (
	DeliveryPickUp  DeliveryType = "pick-up"
	DeliveryDropOff DeliveryType = "drop-off"
)

// IsValid returns true if the delivery type is one of the known types
func (d DeliveryType) IsValid() bool {
	return d == DeliveryPickUp || d == DeliveryDropOff
}

// ScreenColor represents the replacement screen color for screen repairs
type ScreenColor string

const (
	ScreenColorWhite ScreenColor = "white"
	ScreenColorBlack ScreenColor = "black"
)

// IsValid returns true if the screen color is one of the known colors
func (c ScreenColor) IsValid() bool {
	return c == ScreenColorWhite || c == ScreenColorBlack
}

// Address полный адрес забора устройства (для pick-up)
type Address struct {
	Street   string
	Postcode string
	City     string
}

// IsComplete returns true if all address fields are filled in
func (a Address) IsComplete() bool {
	return a.Street != "" && a.Postcode != "" && a.City != ""
}

// Booking represents a committed repair booking
// Запись неизменяема после создания, кроме последующего прикрепления
// email для отправки подтверждения
type Booking struct {
	ID          string // UUID
	PhoneModel  string
	RepairType  RepairType
	ScreenColor *ScreenColor // только для ремонта экрана

	StartsAt time.Time // дата и время слота, нормализованы до минуты

	DeliveryType  DeliveryType
	PickUpAddress *Address // только для pick-up

	Price float64

	Email *string // прикрепляется после отправки уведомления

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPickUp returns true if the device is collected from the customer
func (b *Booking) IsPickUp() bool {
	return b.DeliveryType == DeliveryPickUp
}

// NormalizeStartsAt усекает дату-время слота до минуты
// Уникальность слота в хранилище контролируется именно по этому значению
func NormalizeStartsAt(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
