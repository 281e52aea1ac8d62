package submit_rating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBoard struct {
	known     map[domain.ID]domain.Booking
	snapshots []domain.Booking
	fetches   int
}

func (f *fakeBoard) Known(subject string, id domain.ID) (domain.Booking, bool) {
	b, ok := f.known[id]
	return b, ok
}

func (f *fakeBoard) Fetch(ctx context.Context, subject, token string, id domain.ID) (*domain.Booking, error) {
	idx := f.fetches
	if idx >= len(f.snapshots) {
		idx = len(f.snapshots) - 1
	}
	f.fetches++
	b := f.snapshots[idx]
	return &b, nil
}

func (f *fakeBoard) MarkRated(subject string, id, ratingID domain.ID) {
	if f.known == nil {
		f.known = make(map[domain.ID]domain.Booking)
	}
	b := f.known[id]
	b.ID = id
	b.RatingID = &ratingID
	f.known[id] = b
}

type fakeAPI struct {
	requests []domain.CreateRatingRequest
	err      error
}

func (f *fakeAPI) CreateRating(ctx context.Context, token string, req domain.CreateRatingRequest) (*domain.Rating, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Rating{ID: "r1", BookingID: req.BookingID, Score: req.Score}, nil
}

func completed(rated bool) domain.Booking {
	b := domain.Booking{ID: "10", Status: domain.StatusCompleted, RatingAllowed: true}
	if rated {
		id := domain.ID("r1")
		b.RatingID = &id
		b.RatingAllowed = false
	}
	return b
}

func TestExecute_Success(t *testing.T) {
	board := &fakeBoard{snapshots: []domain.Booking{completed(false), completed(true)}}
	api := &fakeAPI{}

	resp, err := NewUseCase(board, api, nopLogger{}).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", BookingID: "10", Score: 5, Comment: "  Ótimo serviço ",
	})
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	assert.Equal(t, "Ótimo serviço", api.requests[0].Comment)
	assert.Equal(t, domain.ID("r1"), resp.Rating.ID)
	assert.True(t, resp.Booking.HasRating())
	assert.False(t, resp.Booking.CanRate())
}

func TestExecute_AlreadyRatedOnBoard(t *testing.T) {
	board := &fakeBoard{known: map[domain.ID]domain.Booking{"10": completed(true)}}
	api := &fakeAPI{}

	_, err := NewUseCase(board, api, nopLogger{}).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", BookingID: "10", Score: 4,
	})
	assert.ErrorIs(t, err, ErrAlreadyRated)
	assert.Equal(t, 0, board.fetches)
	assert.Empty(t, api.requests)
}

func TestExecute_AlreadyRatedOnServer(t *testing.T) {
	board := &fakeBoard{snapshots: []domain.Booking{completed(true)}}

	_, err := NewUseCase(board, &fakeAPI{}, nopLogger{}).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", BookingID: "10", Score: 4,
	})
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestExecute_NotCompleted(t *testing.T) {
	board := &fakeBoard{snapshots: []domain.Booking{{ID: "10", Status: domain.StatusConfirmed, RatingAllowed: true}}}

	_, err := NewUseCase(board, &fakeAPI{}, nopLogger{}).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", BookingID: "10", Score: 4,
	})
	assert.ErrorIs(t, err, ErrRatingNotAllowed)
}

func TestExecute_ScoreRange(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		board := &fakeBoard{snapshots: []domain.Booking{completed(false)}}
		_, err := NewUseCase(board, &fakeAPI{}, nopLogger{}).Execute(context.Background(), &Request{
			Subject: "u1", Token: "t", BookingID: "10", Score: score,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "score %d", score)
		assert.Equal(t, 0, board.fetches)
	}
}

func TestExecute_APIError(t *testing.T) {
	board := &fakeBoard{snapshots: []domain.Booking{completed(false)}}
	api := &fakeAPI{err: apierror.FromResponse(500, nil)}

	_, err := NewUseCase(board, api, nopLogger{}).Execute(context.Background(), &Request{
		Subject: "u1", Token: "t", BookingID: "10", Score: 3,
	})
	assert.ErrorIs(t, err, apierror.ErrServer)
}

// bookingsAPI API агендаментов для bookings.Service: GetBooking отвечает
// снимками по очереди, ошибка в очереди возвращается как есть
type bookingsAPI struct {
	responses []func() (*domain.Booking, error)
	gets      int
}

func (f *bookingsAPI) CreateBooking(ctx context.Context, token string, req domain.CreateBookingRequest) (*domain.Booking, error) {
	return nil, errors.New("not used")
}

func (f *bookingsAPI) ListBookings(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error) {
	return nil, errors.New("not used")
}

func (f *bookingsAPI) ProviderRequests(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error) {
	return nil, errors.New("not used")
}

func (f *bookingsAPI) GetBooking(ctx context.Context, token string, id domain.ID) (*domain.Booking, error) {
	idx := f.gets
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.gets++
	return f.responses[idx]()
}

func (f *bookingsAPI) GetPayment(ctx context.Context, token string, id domain.ID) (*domain.Payment, error) {
	return nil, errors.New("not used")
}

func TestExecute_RefetchFailureStillBlocksSecondRating(t *testing.T) {
	unrated := completed(false)
	bookingAPI := &bookingsAPI{responses: []func() (*domain.Booking, error){
		func() (*domain.Booking, error) { b := unrated; return &b, nil },
		func() (*domain.Booking, error) { return nil, apierror.Network(errors.New("connection reset")) },
	}}
	board := bookings.NewService(bookingAPI, nil, nopLogger{})
	api := &fakeAPI{}
	uc := NewUseCase(board, api, nopLogger{})
	req := &Request{Subject: "u1", Token: "t", BookingID: "10", Score: 5}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Booking.HasRating())
	assert.Equal(t, 2, bookingAPI.gets)

	known, ok := board.Known("u1", "10")
	require.True(t, ok)
	assert.Equal(t, domain.ID("r1"), *known.RatingID)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyRated)
	assert.Len(t, api.requests, 1)
	assert.Equal(t, 2, bookingAPI.gets)
}
