package catalog

import (
	"context"
	"fmt"

	"github.com/repairbooker/booking-service/internal/domain"
)

// Service сервис каталога моделей и типов ремонта
type Service struct {
	pricingRepo PricingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(pricingRepo PricingRepository, logger Logger) *Service {
	return &Service{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// GetCatalog возвращает каталог: модели с позициями прайс-листа,
// типы ремонта, цвета экрана и способы доставки
// Модели без единой цены в каталог не попадают - забронировать
// для них нечего
func (s *Service) GetCatalog(ctx context.Context) (*CatalogResponse, error) {
	s.logger.Info("GetCatalog: fetching price list")

	table, err := s.pricingRepo.ListPriced(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	phoneModels := make([]PhoneModelResponse, 0, len(table))
	// Обходим модели в порядке выпуска, а не в порядке map
	for _, model := range domain.PhoneModels {
		prices, ok := table[model]
		if !ok {
			continue
		}

		repairs := make([]RepairOption, 0, len(prices))
		for _, repairType := range domain.RepairTypes {
			price, ok := prices[repairType]
			if !ok {
				continue
			}
			repairs = append(repairs, RepairOption{
				RepairType: string(repairType),
				Price:      price,
			})
		}

		phoneModels = append(phoneModels, PhoneModelResponse{
			Model:   model,
			Repairs: repairs,
		})
	}

	repairTypes := make([]string, len(domain.RepairTypes))
	for i, rt := range domain.RepairTypes {
		repairTypes[i] = string(rt)
	}

	s.logger.Info("GetCatalog: %d priced models", len(phoneModels))

	return &CatalogResponse{
		PhoneModels:   phoneModels,
		RepairTypes:   repairTypes,
		ScreenColors:  []string{string(domain.ScreenColorWhite), string(domain.ScreenColorBlack)},
		DeliveryTypes: []string{string(domain.DeliveryPickUp), string(domain.DeliveryDropOff)},
	}, nil
}
