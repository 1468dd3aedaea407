package notify_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/internal/infra/storage/booking"
	"github.com/repairbooker/booking-service/internal/integrations/notifier"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	attachErr error

	attachedID    string
	attachedEmail string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) AttachEmail(_ context.Context, id string, email string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedID = id
	f.attachedEmail = email
	return nil
}

type fakeNotifier struct {
	err   error
	sent  int
	email string
}

func (f *fakeNotifier) Send(_ context.Context, email string, _ string) (*notifier.NotifyResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent++
	f.email = email
	return &notifier.NotifyResponse{Status: true}, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const testBookingID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         testBookingID,
		PhoneModel: "iPhone 6",
		RepairType: domain.RepairScreen,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	dispatcher := &fakeNotifier{}

	resp, err := NewUseCase(repo, dispatcher, noopLogger{}).Execute(context.Background(), &Request{
		BookingID: testBookingID,
		Email:     "customer@example.com",
	})
	require.NoError(t, err)

	assert.True(t, resp.Sent)
	assert.Equal(t, 1, dispatcher.sent)
	assert.Equal(t, "customer@example.com", dispatcher.email)
	assert.Equal(t, testBookingID, repo.attachedID)
	assert.Equal(t, "customer@example.com", repo.attachedEmail)
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: booking.ErrBookingNotFound}
	dispatcher := &fakeNotifier{}

	_, err := NewUseCase(repo, dispatcher, noopLogger{}).Execute(context.Background(), &Request{
		BookingID: testBookingID,
		Email:     "customer@example.com",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 0, dispatcher.sent)
}

func TestUseCase_Execute_InvalidEmail(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	dispatcher := &fakeNotifier{}
	uc := NewUseCase(repo, dispatcher, noopLogger{})

	for _, email := range []string{"", "not-an-email", "missing@"} {
		_, err := uc.Execute(context.Background(), &Request{
			BookingID: testBookingID,
			Email:     email,
		})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
	assert.Equal(t, 0, dispatcher.sent)
}

func TestUseCase_Execute_DispatchFailed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	dispatcher := &fakeNotifier{err: notifier.ErrDispatchFailed}

	_, err := NewUseCase(repo, dispatcher, noopLogger{}).Execute(context.Background(), &Request{
		BookingID: testBookingID,
		Email:     "customer@example.com",
	})
	assert.ErrorIs(t, err, ErrDispatchFailed)

	// Адрес не привязывается, запрос можно повторить
	assert.Empty(t, repo.attachedEmail)
}

func TestUseCase_Execute_AttachFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeBookingRepo{
		booking:   testBooking(),
		attachErr: errors.New("connection reset"),
	}
	dispatcher := &fakeNotifier{}

	// Письмо уже ушло: ошибка привязки адреса логируется, но ответ успешный
	resp, err := NewUseCase(repo, dispatcher, noopLogger{}).Execute(context.Background(), &Request{
		BookingID: testBookingID,
		Email:     "customer@example.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.Sent)
	assert.Equal(t, 1, dispatcher.sent)
}
