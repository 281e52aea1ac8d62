package submit_rating

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UseCase оценка выполненного агендамента cliente
type UseCase struct {
	board    BookingBoard
	api      APIClient
	validate *validator.Validate
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(board BookingBoard, api APIClient, logger Logger) *UseCase {
	return &UseCase{
		board:    board,
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// Execute оценка принимается один раз. Если на доске уже есть оценка,
// запрос к серверу не выполняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRating: subject=%s, booking=%s, score=%d", req.Subject, req.BookingID, req.Score)

	// 1. Валидация
	body, err := validateRequest(uc.validate, req)
	if err != nil {
		uc.logger.Warn("SubmitRating: validation failed: %v", err)
		return nil, err
	}

	// 2. Доска уже знает оценку
	if known, ok := uc.board.Known(req.Subject, req.BookingID); ok && known.HasRating() {
		uc.logger.Warn("SubmitRating: booking id=%s already rated (board)", req.BookingID)
		return nil, ErrAlreadyRated
	}

	// 3. Свежий снимок
	fresh, err := uc.board.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("SubmitRating: failed to fetch booking id=%s: %v", req.BookingID, err)
		return nil, err
	}
	if fresh.HasRating() {
		return nil, ErrAlreadyRated
	}
	if !fresh.CanRate() {
		uc.logger.Warn("SubmitRating: booking id=%s status=%s cannot be rated", req.BookingID, fresh.Status)
		return nil, fmt.Errorf("%w: status %s", ErrRatingNotAllowed, fresh.Status)
	}

	// 4. Отправка
	rating, err := uc.api.CreateRating(ctx, req.Token, body)
	if err != nil {
		uc.logger.Error("SubmitRating: api error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("submit_rating: %w", err)
	}

	// 5. Доска узнает id оценки сразу, до повторного запроса
	uc.board.MarkRated(req.Subject, req.BookingID, rating.ID)

	// 6. Перечитываем снимок; при ошибке отдаем прежний с id оценки
	updated, err := uc.board.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("SubmitRating: refetch of booking id=%s failed: %v", req.BookingID, err)
		snapshot := *fresh
		snapshot.RatingID = &rating.ID
		snapshot.RatingAllowed = false
		updated = &snapshot
	}

	uc.logger.Info("SubmitRating: rating id=%s created for booking id=%s", rating.ID, req.BookingID)
	return &Response{Rating: rating, Booking: updated}, nil
}
