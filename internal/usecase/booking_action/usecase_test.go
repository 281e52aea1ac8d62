package booking_action

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeFetcher отдает снимки по очереди; последний повторяется
type fakeFetcher struct {
	mu        sync.Mutex
	snapshots []domain.Booking
	calls     int
	err       error
}

func (f *fakeFetcher) Fetch(ctx context.Context, subject, token string, id domain.ID) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil && f.calls > 0 {
		f.calls++
		return nil, f.err
	}
	idx := f.calls
	if idx >= len(f.snapshots) {
		idx = len(f.snapshots) - 1
	}
	f.calls++
	b := f.snapshots[idx]
	return &b, nil
}

type fakeAPI struct {
	calls  []string
	coords *domain.Coordinates
	err    error
}

func (f *fakeAPI) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeAPI) AcceptBooking(ctx context.Context, token string, id domain.ID) error {
	return f.record("accept")
}

func (f *fakeAPI) DeclineBooking(ctx context.Context, token string, id domain.ID) error {
	return f.record("decline")
}

func (f *fakeAPI) CancelBooking(ctx context.Context, token string, id domain.ID) error {
	return f.record("cancel")
}

func (f *fakeAPI) ConfirmPayment(ctx context.Context, token string, id domain.ID) error {
	return f.record("confirm_payment")
}

func (f *fakeAPI) CheckIn(ctx context.Context, token string, id domain.ID, at domain.Coordinates) error {
	f.coords = &at
	return f.record("check_in")
}

func newUseCase(fetcher BookingFetcher, api APIClient) *UseCase {
	uc := NewUseCase(fetcher, api, 50*time.Millisecond, nopLogger{})
	uc.timeProvider = fixedTime{}
	return uc
}

func snapshot(status domain.Status) domain.Booking {
	return domain.Booking{
		ID:            "10",
		Status:        status,
		ScheduledAt:   domain.NewDateTime(testNow.Add(3 * time.Hour)),
		PaymentMethod: domain.PaymentOnline,
	}
}

func TestExecute_AcceptRefetches(t *testing.T) {
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusPending), snapshot(domain.StatusAccepted)}}
	api := &fakeAPI{}

	resp, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "p1", Token: "t", Role: domain.RoleProvider, BookingID: "10", Action: domain.ActionAccept,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"accept"}, api.calls)
	assert.True(t, resp.Refreshed)
	assert.Equal(t, domain.StatusAccepted, resp.Booking.Status)
	assert.Equal(t, 2, fetcher.calls)
}

func TestExecute_NotAllowedOnFreshSnapshot(t *testing.T) {
	// заявка уже отменена cliente: prestador не может принять
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusCancelled)}}
	api := &fakeAPI{}

	_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "p1", Token: "t", Role: domain.RoleProvider, BookingID: "10", Action: domain.ActionAccept,
	})

	require.ErrorIs(t, err, domain.ErrActionRejected)
	assert.ErrorIs(t, err, domain.ErrTerminalStatus)
	var rejected *domain.ActionRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.StatusCancelled, rejected.Booking.Status)
	assert.Empty(t, api.calls)
	assert.Equal(t, 1, fetcher.calls)
}

func TestExecute_TransitionNotDefinedForRole(t *testing.T) {
	tests := []struct {
		name   string
		status domain.Status
		role   domain.Role
		action domain.Action
	}{
		{"customer accepts own request", domain.StatusPending, domain.RoleCustomer, domain.ActionAccept},
		{"provider cancels", domain.StatusAccepted, domain.RoleProvider, domain.ActionCancel},
		{"check-in before acceptance", domain.StatusPending, domain.RoleProvider, domain.ActionCheckIn},
		{"payment confirmed twice", domain.StatusConfirmed, domain.RoleCustomer, domain.ActionConfirmPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(tt.status)}}
			api := &fakeAPI{}

			_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
				Subject: "u1", Token: "t", Role: tt.role, BookingID: "10", Action: tt.action,
				Location: geo.Static(&domain.Coordinates{}),
			})

			assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
			var rejected *domain.ActionRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tt.status, rejected.Booking.Status)
			assert.Empty(t, api.calls)
		})
	}
}

func TestExecute_ServerRejectionReturnsAuthoritativeSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusPending), snapshot(domain.StatusAccepted)}}
	api := &fakeAPI{err: apierror.FromResponse(400, []byte(`{"message":"Agendamento já aceito"}`), "message")}

	_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", Role: domain.RoleCustomer, BookingID: "10", Action: domain.ActionCancel,
	})

	require.ErrorIs(t, err, domain.ErrActionRejected)
	assert.ErrorIs(t, err, apierror.ErrValidation)
	var rejected *domain.ActionRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.StatusAccepted, rejected.Booking.Status)
	assert.Equal(t, "Agendamento já aceito", apierror.UserMessage(err))
}

func TestExecute_NetworkErrorIsNotRejection(t *testing.T) {
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusPending)}}
	api := &fakeAPI{err: apierror.Network(errors.New("connection refused"))}

	_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", Role: domain.RoleCustomer, BookingID: "10", Action: domain.ActionCancel,
	})

	assert.ErrorIs(t, err, apierror.ErrNetwork)
	assert.NotErrorIs(t, err, domain.ErrActionRejected)
	assert.Equal(t, 1, fetcher.calls)
}

func TestExecute_CheckInUsesLocation(t *testing.T) {
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusConfirmed)}}
	api := &fakeAPI{}

	_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "p1", Token: "t", Role: domain.RoleProvider, BookingID: "10", Action: domain.ActionCheckIn,
		Location: geo.Static(&domain.Coordinates{Latitude: -23.5, Longitude: -46.6}),
	})
	require.NoError(t, err)
	require.NotNil(t, api.coords)
	assert.Equal(t, -23.5, api.coords.Latitude)
}

func TestExecute_CheckInWithoutLocation(t *testing.T) {
	fetcher := &fakeFetcher{snapshots: []domain.Booking{snapshot(domain.StatusConfirmed)}}
	api := &fakeAPI{}

	_, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "p1", Token: "t", Role: domain.RoleProvider, BookingID: "10", Action: domain.ActionCheckIn,
		Location: geo.Static(nil),
	})

	assert.ErrorIs(t, err, geo.ErrLocationUnavailable)
	assert.NotErrorIs(t, err, apierror.ErrNetwork)
	assert.Empty(t, api.calls)
}

func TestExecute_RefetchFailureKeepsPreviousSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{
		snapshots: []domain.Booking{snapshot(domain.StatusAccepted)},
		err:       apierror.Network(errors.New("timeout")),
	}
	api := &fakeAPI{}

	resp, err := newUseCase(fetcher, api).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", Role: domain.RoleCustomer, BookingID: "10", Action: domain.ActionConfirmPayment,
	})
	require.NoError(t, err)
	assert.False(t, resp.Refreshed)
	assert.Equal(t, domain.StatusAccepted, resp.Booking.Status)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeFetcher{}, &fakeAPI{})

	_, err := uc.Execute(context.Background(), &Request{Token: "t", Role: domain.RoleCustomer, Action: domain.ActionCancel})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Token: "t", Role: domain.RoleProvider, BookingID: "1", Action: domain.ActionCheckOut})
	assert.ErrorIs(t, err, ErrUnsupportedAction)
}
