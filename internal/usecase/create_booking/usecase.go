package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/infra/storage/booking"
	"github.com/repairbooker/booking-service/internal/infra/storage/pricing"
	"github.com/repairbooker/booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	pricingRepo  PricingRepository
	txManager    TransactionManager
	pricingCfg   PricingConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pricingRepo PricingRepository,
	txManager TransactionManager,
	pricingCfg PricingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pricingRepo:  pricingRepo,
		txManager:    txManager,
		pricingCfg:   pricingCfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в одной serializable
// транзакции: из конкурирующих заявок на один слот успешной будет
// ровно одна, остальные получат ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: model=%s, repair=%s, date=%s %s",
		req.PhoneModel, req.RepairType, req.Date.Format(domain.DateFormat), req.StartTime)

	startsAt := domain.NormalizeStartsAt(combineDateTime(req.Date, req.StartTime))

	// 2. Получаем цену ремонта из прайс-листа
	basePrice, err := uc.pricingRepo.GetPrice(ctx, req.PhoneModel, req.RepairType)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotFound) {
			uc.logger.Warn("CreateBooking: no price for model=%s repair=%s", req.PhoneModel, req.RepairType)
			return nil, fmt.Errorf("%w: model=%s repair=%s", ErrPricingUnavailable, req.PhoneModel, req.RepairType)
		}
		uc.logger.Error("CreateBooking: failed to get price: %v", err)
		return nil, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	totalPrice := domain.TotalPrice(basePrice, req.DeliveryType, uc.pricingCfg.PickUpCharge)

	// 3. Создаем бронирование в serializable транзакции
	var created *domain.Booking
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем занятость слота под блокировкой
		exists, err := uc.bookingRepo.ExistsAtTime(txCtx, startsAt)
		if err != nil {
			return fmt.Errorf("failed to check slot: %w", err)
		}
		if exists {
			return ErrSlotTaken
		}

		// 3.2. Вставляем бронирование
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ID:            uuid.New().String(),
			PhoneModel:    req.PhoneModel,
			RepairType:    req.RepairType,
			ScreenColor:   req.ScreenColor,
			StartsAt:      startsAt,
			DeliveryType:  req.DeliveryType,
			PickUpAddress: req.PickUpAddress,
			Price:         totalPrice,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if txErr != nil {
		// Уникальный индекс по starts_at ловит гонки, которые
		// просочились мимо проверки существования
		if errors.Is(txErr, ErrSlotTaken) || errors.Is(txErr, booking.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s already taken", startsAt.Format(time.RFC3339))
			return nil, fmt.Errorf("%w: %s", ErrSlotTaken, startsAt.Format(time.RFC3339))
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking: created booking id=%s at %s, price=%.2f",
		created.ID, created.StartsAt.Format(time.RFC3339), created.Price)

	return &Response{
		ID:            created.ID,
		PhoneModel:    created.PhoneModel,
		RepairType:    created.RepairType,
		ScreenColor:   created.ScreenColor,
		StartsAt:      created.StartsAt,
		DeliveryType:  created.DeliveryType,
		PickUpAddress: created.PickUpAddress,
		Price:         created.Price,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// combineDateTime собирает момент начала слота из даты и времени HH:MM
func combineDateTime(date time.Time, startTime types.TimeString) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		startTime.Hour(), startTime.Minute(), 0, 0, date.Location())
}
