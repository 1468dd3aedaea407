package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/repairbooker/booking-service/internal/calendar"
)

// UseCase use case для получения месячного вида календаря
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения месячного вида
// Календарь не зависит от данных бронирований: доступность дней
// определяется только текущей датой
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Пустой запрос означает текущий месяц
	year, month := req.Year, req.Month
	if year == 0 && month == 0 {
		year, month = now.Year(), now.Month()
	}

	// 3. Строим месячный вид
	page, err := calendar.BuildMonthPage(year, month, now)
	if err != nil {
		if errors.Is(err, calendar.ErrPastMonth) {
			uc.logger.Info("GetCalendar: %d-%02d is in the past", year, month)
			return nil, fmt.Errorf("%w: %d-%02d", ErrPastMonth, year, month)
		}
		return nil, err
	}

	days := make([]Day, len(page.Days))
	for i, d := range page.Days {
		days[i] = Day{Number: d.Number, Selectable: d.Selectable}
	}

	return &Response{
		Year:               page.Year,
		Month:              page.Month,
		DayCount:           page.DayCount,
		FirstWeekdayOffset: page.FirstWeekdayOffset,
		Days:               days,
	}, nil
}

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	// Год и месяц указываются парой
	if (req.Year == 0) != (req.Month == 0) {
		return fmt.Errorf("%w: year and month must be set together", ErrInvalidInput)
	}

	if req.Month != 0 && (req.Month < time.January || req.Month > time.December) {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}
	if req.Year != 0 && req.Year < 1 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	return nil
}
