package check_delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/integrations/geolocation"
	"github.com/repairbooker/booking-service/pkg/geo"
)

// UseCase use case для проверки доступности забора устройства
type UseCase struct {
	geoClient   GeolocationClient
	deliveryCfg DeliveryConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(geoClient GeolocationClient, deliveryCfg DeliveryConfig, logger Logger) *UseCase {
	return &UseCase{
		geoClient:   geoClient,
		deliveryCfg: deliveryCfg,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности pick-up
// Недоступность - обычный результат с причиной, а не ошибка:
// клиент показывает причину и предлагает drop-off
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDelivery: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем позицию клиента
	lat, lon, reason, err := uc.resolvePosition(ctx, req)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		uc.logger.Info("CheckDelivery: position unavailable: %s", reason)
		return &Response{Eligible: false, Reason: reason}, nil
	}

	// 3. Считаем расстояние до мастерской
	eligibility := uc.evaluate(lat, lon)

	uc.logger.Debug("CheckDelivery: eligible=%t, distance=%.2f km, max=%.2f km",
		eligibility.Eligible, eligibility.DistanceKm, uc.deliveryCfg.MaxPickUpDistanceKm)

	return &Response{
		Eligible:   eligibility.Eligible,
		Reason:     eligibility.Reason,
		DistanceKm: eligibility.DistanceKm,
	}, nil
}

// evaluate проверяет расстояние от клиента до мастерской
func (uc *UseCase) evaluate(lat, lon float64) domain.DeliveryEligibility {
	distance := geo.Distance(lat, lon, uc.deliveryCfg.ShopLat, uc.deliveryCfg.ShopLon)

	if distance >= uc.deliveryCfg.MaxPickUpDistanceKm {
		return domain.DeliveryEligibility{
			Eligible:   false,
			Reason:     domain.ReasonTooFar,
			DistanceKm: distance,
		}
	}

	return domain.DeliveryEligibility{
		Eligible:   true,
		DistanceKm: distance,
	}
}

// resolvePosition возвращает координаты клиента либо причину,
// по которой их получить нельзя
func (uc *UseCase) resolvePosition(ctx context.Context, req *Request) (lat, lon float64, reason string, err error) {
	if req.Lat != nil && req.Lon != nil {
		return *req.Lat, *req.Lon, "", nil
	}

	pos, err := uc.geoClient.Locate(ctx, req.ClientID)
	if err != nil {
		switch {
		case errors.Is(err, geolocation.ErrPermissionDenied):
			return 0, 0, domain.ReasonEnableLocation, nil
		case errors.Is(err, geolocation.ErrTimeout), errors.Is(err, geolocation.ErrLocationUnavailable):
			return 0, 0, domain.ReasonCannotGetLocation, nil
		default:
			uc.logger.Error("CheckDelivery: failed to locate client %s: %v", req.ClientID, err)
			return 0, 0, "", fmt.Errorf("%w: failed to locate client: %v", ErrInternal, err)
		}
	}

	return pos.Lat, pos.Lon, "", nil
}
