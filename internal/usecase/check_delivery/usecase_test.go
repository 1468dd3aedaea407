package check_delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/integrations/geolocation"
	"github.com/repairbooker/booking-service/pkg/ptr"
)

// Координаты мастерской из конфигурации по умолчанию
const (
	shopLat = 50.75643098431303
	shopLon = -1.893119256572048
)

type fakeGeoClient struct {
	pos *geolocation.Position
	err error
}

func (f *fakeGeoClient) Locate(_ context.Context, _ string) (*geolocation.Position, error) {
	return f.pos, f.err
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(geo *fakeGeoClient) *UseCase {
	return NewUseCase(geo, DeliveryConfig{
		ShopLat:             shopLat,
		ShopLon:             shopLon,
		MaxPickUpDistanceKm: 10,
	}, noopLogger{})
}

func TestUseCase_Execute_NearbyEligible(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{})

	// Точка в паре километров от мастерской
	resp, err := uc.Execute(context.Background(), &Request{
		Lat: ptr.Ptr(shopLat + 0.02),
		Lon: ptr.Ptr(shopLon),
	})
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.Empty(t, resp.Reason)
	assert.Greater(t, resp.DistanceKm, 0.0)
	assert.Less(t, resp.DistanceKm, 10.0)
}

func TestUseCase_Execute_TooFar(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{})

	// ~15 км к северу от мастерской
	resp, err := uc.Execute(context.Background(), &Request{
		Lat: ptr.Ptr(shopLat + 0.135),
		Lon: ptr.Ptr(shopLon),
	})
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Equal(t, domain.ReasonTooFar, resp.Reason)
	assert.GreaterOrEqual(t, resp.DistanceKm, 10.0)
}

func TestUseCase_Execute_ExactShopLocation(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		Lat: ptr.Ptr(shopLat),
		Lon: ptr.Ptr(shopLon),
	})
	require.NoError(t, err)
	assert.True(t, resp.Eligible)
}

func TestUseCase_Execute_LocateByClientID(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{
		pos: &geolocation.Position{Lat: shopLat + 0.01, Lon: shopLon},
	})

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "client-1"})
	require.NoError(t, err)
	assert.True(t, resp.Eligible)
}

func TestUseCase_Execute_PermissionDenied(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{err: geolocation.ErrPermissionDenied})

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "client-1"})
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Equal(t, domain.ReasonEnableLocation, resp.Reason)
}

func TestUseCase_Execute_LocationUnavailable(t *testing.T) {
	for _, geoErr := range []error{geolocation.ErrTimeout, geolocation.ErrLocationUnavailable} {
		uc := newTestUseCase(&fakeGeoClient{err: geoErr})

		resp, err := uc.Execute(context.Background(), &Request{ClientID: "client-1"})
		require.NoError(t, err)

		assert.False(t, resp.Eligible)
		assert.Equal(t, domain.ReasonCannotGetLocation, resp.Reason)
	}
}

func TestUseCase_Execute_NoCoordsNoClientID(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_CoordsOutOfRange(t *testing.T) {
	uc := newTestUseCase(&fakeGeoClient{})

	_, err := uc.Execute(context.Background(), &Request{
		Lat: ptr.Ptr(123.0),
		Lon: ptr.Ptr(0.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
