package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/infra/storage/pricing"
)

// UseCase use case для расчета стоимости ремонта
type UseCase struct {
	pricingRepo PricingRepository
	pricingCfg  PricingConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRepository, pricingCfg PricingConfig, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		pricingCfg:  pricingCfg,
		logger:      logger,
	}
}

// Execute выполняет use case расчета стоимости
// Наценка за забор устройства добавляется только для pick-up
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Debug("CalculatePrice: model=%s, repair=%s, delivery=%s",
		req.PhoneModel, req.RepairType, req.DeliveryType)

	// 2. Получаем базовую цену из прайс-листа
	basePrice, err := uc.pricingRepo.GetPrice(ctx, req.PhoneModel, req.RepairType)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotFound) {
			uc.logger.Warn("CalculatePrice: no price for model=%s repair=%s", req.PhoneModel, req.RepairType)
			return nil, fmt.Errorf("%w: model=%s repair=%s", ErrPricingUnavailable, req.PhoneModel, req.RepairType)
		}
		uc.logger.Error("CalculatePrice: failed to get price: %v", err)
		return nil, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	// 3. Считаем итог с учетом способа доставки
	total := domain.TotalPrice(basePrice, req.DeliveryType, uc.pricingCfg.PickUpCharge)

	resp := &Response{
		BasePrice:  basePrice,
		TotalPrice: total,
	}
	if req.DeliveryType == domain.DeliveryPickUp {
		resp.PickUpCharge = uc.pricingCfg.PickUpCharge
	}

	return resp, nil
}
