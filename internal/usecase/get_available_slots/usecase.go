package get_available_slots

import (
	"context"
	"fmt"

	"github.com/repairbooker/booking-service/internal/domain"
)

// UseCase use case для получения слотов дня с признаком доступности
type UseCase struct {
	bookingRepo  BookingRepository
	slotsConfig  SlotsConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotsConfig SlotsConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotsConfig:  slotsConfig,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня
// Доступность всегда вычисляется заново по текущему содержимому
// хранилища - результаты не кэшируются между запросами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие дни не содержат доступных слотов
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:  req.Date,
			Slots: []Slot{},
		}, nil
	}

	// 4. Генерируем слоты дня из конфигурации рабочих часов
	slots, err := generateSlots(uc.slotsConfig.StartHour, uc.slotsConfig.EndHour, uc.slotsConfig.StepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, err
	}

	// 5. Получаем бронирования на этот день
	bookings, err := uc.bookingRepo.GetByDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Помечаем занятые слоты (строгое совпадение дня и времени HH:MM)
	marked := markAvailability(slots, req.Date, bookings)

	result := make([]Slot, len(marked))
	for i, slot := range marked {
		result[i] = Slot{
			StartTime: slot.StartTime,
			Available: slot.Available,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s, %d bookings considered",
		len(result), req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:  req.Date,
		Slots: result,
	}, nil
}
