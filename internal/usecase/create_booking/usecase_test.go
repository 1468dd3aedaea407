package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/infra/storage/pricing"
	"github.com/repairbooker/booking-service/pkg/types"
)

// memBookingRepo потокобезопасное in-memory хранилище для тестов
// Мьютекс имитирует сериализацию конкурирующих транзакций
type memBookingRepo struct {
	mu      sync.Mutex
	byTime  map[time.Time]*domain.Booking
	createN int
	existsN int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{byTime: make(map[time.Time]*domain.Booking)}
}

func (m *memBookingRepo) ExistsAtTime(_ context.Context, startsAt time.Time) (bool, error) {
	m.existsN++
	_, ok := m.byTime[startsAt]
	return ok, nil
}

func (m *memBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.createN++
	created := *b
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.byTime[b.StartsAt] = &created
	return &created, nil
}

// memTxManager выполняет fn под общим мьютексом хранилища, как это
// делала бы serializable транзакция
type memTxManager struct {
	repo *memBookingRepo
}

func (m *memTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()
	return fn(ctx)
}

type fakePricingRepo struct {
	prices map[string]map[domain.RepairType]float64
}

func (f *fakePricingRepo) GetPrice(_ context.Context, model string, repairType domain.RepairType) (float64, error) {
	if price, ok := f.prices[model][repairType]; ok {
		return price, nil
	}
	return 0, pricing.ErrPriceNotFound
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *memBookingRepo, now time.Time) *UseCase {
	pricingRepo := &fakePricingRepo{
		prices: map[string]map[domain.RepairType]float64{
			"iPhone 6":  {domain.RepairScreen: 40, domain.RepairBattery: 25},
			"iPhone 12": {domain.RepairBattery: 52},
		},
	}

	uc := NewUseCase(repo, pricingRepo, &memTxManager{repo: repo}, PricingConfig{PickUpCharge: 5}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	color := domain.ScreenColorBlack
	return &Request{
		PhoneModel:   "iPhone 6",
		RepairType:   domain.RepairScreen,
		ScreenColor:  &color,
		Date:         time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("10:00"),
		DeliveryType: domain.DeliveryDropOff,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()

	resp, err := newTestUseCase(repo, now).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "iPhone 6", resp.PhoneModel)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, 40.0, resp.Price)
	assert.Equal(t, 1, repo.createN)
}

func TestUseCase_Execute_PickUpSurcharge(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()

	req := validRequest()
	req.DeliveryType = domain.DeliveryPickUp
	req.PickUpAddress = &domain.Address{Street: "12 High St", Postcode: "BH1 1AA", City: "Bournemouth"}

	resp, err := newTestUseCase(repo, now).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 45.0, resp.Price)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.PhoneModel = "iPhone 12"
	req.RepairType = domain.RepairBattery
	req.ScreenColor = nil

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, repo.createN)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, now)

	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, conflicted int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, ErrSlotTaken)
			conflicted++
		}
	}

	// На один слот проходит ровно одна из конкурирующих заявок
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Equal(t, 1, repo.createN)
}

func TestUseCase_Execute_PricingUnavailable(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()

	req := validRequest()
	req.PhoneModel = "iPhone 13" // модели нет в прайс-листе
	req.RepairType = domain.RepairBattery
	req.ScreenColor = nil

	_, err := newTestUseCase(repo, now).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPricingUnavailable)
	assert.Equal(t, 0, repo.createN)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	now := time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)
	repo := newMemBookingRepo()

	_, err := newTestUseCase(repo, now).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, repo.createN)
}
