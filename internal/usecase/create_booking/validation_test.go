package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/types"
)

func TestValidateRequest_PickUpRequiresAddress(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.DeliveryType = domain.DeliveryPickUp
	req.PickUpAddress = nil

	// Отказ происходит до любого обращения к хранилищу
	assert.ErrorIs(t, validateRequest(req, now), domain.ErrPickUpAddressIncomplete)
}

func TestValidateRequest_IncompleteAddress(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.DeliveryType = domain.DeliveryPickUp
	req.PickUpAddress = &domain.Address{Street: "12 High St", City: "Bournemouth"}

	assert.ErrorIs(t, validateRequest(req, now), domain.ErrPickUpAddressIncomplete)
}

func TestValidateRequest_ScreenRepairRequiresColor(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.ScreenColor = nil

	assert.ErrorIs(t, validateRequest(req, now), domain.ErrScreenColorNotSet)
}

func TestValidateRequest_UnknownModel(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.PhoneModel = "Galaxy S10"

	assert.ErrorIs(t, validateRequest(req, now), domain.ErrUnknownPhoneModel)
}

func TestValidateRequest_BadStartTime(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.StartTime = types.TimeString("25:99")

	assert.ErrorIs(t, validateRequest(req, now), ErrInvalidInput)
}

func TestValidateRequest_PastSlot(t *testing.T) {
	now := time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC)

	// Слот 10:00 того же дня уже прошел
	req := validRequest()

	assert.ErrorIs(t, validateRequest(req, now), ErrInvalidDate)
}

func TestValidateRequest_NilRequest(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, validateRequest(nil, now), ErrInvalidInput)
}
