package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
	"github.com/m04kA/ajeitai-client/pkg/latest"
)

const msgPaymentTooLate = "Pagamento não disponível: faltam menos de 1 hora para o atendimento."

// Service агендаменты пользователя: списки по вкладкам, карточки,
// создание и ссылка на оплату
type Service struct {
	api          APIClient
	timeProvider TimeProvider
	validate     *validator.Validate
	logger       Logger

	mu     sync.Mutex
	boards map[string]*Board
}

// NewService создает новый экземпляр сервиса агендаментов
func NewService(api APIClient, timeProvider TimeProvider, logger Logger) *Service {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &Service{
		api:          api,
		timeProvider: timeProvider,
		validate:     validator.New(),
		logger:       logger,
		boards:       make(map[string]*Board),
	}
}

// List агендаменты вкладки. cliente видит свои агендаменты, prestador -
// входящие заявки. Фильтрация по вкладке выполняется локально.
func (s *Service) List(ctx context.Context, req models.ListRequest) (*models.BookingList, error) {
	s.logger.Info("List: fetching bookings for subject=%s, role=%s, tab=%s", req.Subject, req.Role, req.Tab)

	fetch := s.api.ListBookings
	if req.Role == domain.RoleProvider {
		fetch = s.api.ProviderRequests
	}

	board := s.Board(req.Subject)
	stamp := board.stamp()
	all, committed, err := latest.Do(ctx, &board.list, func(ctx context.Context) ([]domain.Booking, error) {
		return fetch(ctx, req.Token, nil)
	}, func(list []domain.Booking) { board.replace(list, stamp) })
	if err != nil {
		s.logger.Error("List: api error for subject=%s: %v", req.Subject, err)
		return nil, fmt.Errorf("bookings: list: %w", err)
	}
	if !committed {
		s.logger.Info("List: stale response for subject=%s discarded from board", req.Subject)
	}

	now := s.timeProvider.Now()
	filtered := domain.FilterByTab(all, req.Tab)
	items := make([]models.BookingCard, 0, len(filtered))
	for i := range filtered {
		if err := filtered[i].Validate(); err != nil {
			s.logger.Warn("List: inconsistent booking from api: %v", err)
		}
		items = append(items, Card(&filtered[i], req.Role, now))
	}

	s.logger.Info("List: %d of %d bookings on tab=%s for subject=%s", len(items), len(all), req.Tab, req.Subject)
	return &models.BookingList{
		Tab:    req.Tab,
		Items:  items,
		Counts: domain.TabCounts(all),
	}, nil
}

// Fetch авторитетный снимок агендамента с сервера. Результат попадает на
// доску, только если после него не был начат более новый запрос.
func (s *Service) Fetch(ctx context.Context, subject, token string, id domain.ID) (*domain.Booking, error) {
	board := s.Board(subject)
	stamp := board.stamp()

	var fresh bool
	booking, committed, err := latest.Do(ctx, board.guard(id), func(ctx context.Context) (*domain.Booking, error) {
		return s.api.GetBooking(ctx, token, id)
	}, func(b *domain.Booking) { fresh = board.put(b, stamp) })
	if err != nil {
		return nil, fmt.Errorf("bookings: fetch %s: %w", id, err)
	}
	if !committed || !fresh {
		s.logger.Info("Fetch: stale response for booking id=%s discarded from board", id)
	}
	return booking, nil
}

// Get карточка агендамента
func (s *Service) Get(ctx context.Context, subject, token string, role domain.Role, id domain.ID) (*models.BookingCard, error) {
	s.logger.Info("Get: fetching booking id=%s for subject=%s", id, subject)

	booking, err := s.Fetch(ctx, subject, token, id)
	if err != nil {
		s.logger.Warn("Get: booking id=%s: %v", id, err)
		return nil, err
	}

	card := Card(booking, role, s.timeProvider.Now())
	return &card, nil
}

// Create отправляет заявку prestador. Начало не раньше чем через
// domain.MinBookingAdvance.
func (s *Service) Create(ctx context.Context, subject, token string, req domain.CreateBookingRequest) (*models.BookingCard, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()
	if req.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: dataHora is required", ErrInvalidInput)
	}
	if req.ScheduledAt.Sub(now) < domain.MinBookingAdvance {
		return nil, fmt.Errorf("%w: scheduled at %s", ErrTooSoon, req.ScheduledAt.Format(time.RFC3339))
	}

	s.logger.Info("Create: subject=%s requests provider=%s at %s", subject, req.ProviderID, req.ScheduledAt.Format(time.RFC3339))

	booking, err := s.api.CreateBooking(ctx, token, req)
	if err != nil {
		s.logger.Error("Create: api error for subject=%s: %v", subject, err)
		return nil, fmt.Errorf("bookings: create: %w", err)
	}
	board := s.Board(subject)
	board.put(booking, board.stamp())

	s.logger.Info("Create: booking id=%s created with status=%s", booking.ID, booking.Status)
	card := Card(booking, domain.RoleCustomer, now)
	return &card, nil
}

// PaymentLink ссылка на онлайн-оплату. Перед запросом ссылки проверяется
// свежий снимок: оплата доступна только в ACEITO и не позже чем за час.
func (s *Service) PaymentLink(ctx context.Context, subject, token string, id domain.ID) (string, error) {
	booking, err := s.Fetch(ctx, subject, token, id)
	if err != nil {
		return "", err
	}

	if !booking.Actions(domain.RoleCustomer, s.timeProvider.Now()).Has(domain.ActionPayNow) {
		s.logger.Warn("PaymentLink: payment unavailable for booking id=%s status=%s", id, booking.Status)
		return "", fmt.Errorf("%w: booking %s", ErrPaymentUnavailable, id)
	}

	payment, err := s.api.GetPayment(ctx, token, id)
	if err != nil {
		s.logger.Error("PaymentLink: api error for booking id=%s: %v", id, err)
		return "", fmt.Errorf("bookings: payment %s: %w", id, err)
	}
	if payment == nil || payment.Link == "" {
		return "", fmt.Errorf("%w: booking %s", ErrPaymentLinkUnavailable, id)
	}

	return payment.Link, nil
}

// Known последний снимок агендамента без обращения к серверу
func (s *Service) Known(subject string, id domain.ID) (domain.Booking, bool) {
	s.mu.Lock()
	board, ok := s.boards[subject]
	s.mu.Unlock()
	if !ok {
		return domain.Booking{}, false
	}
	return board.Get(id)
}

// MarkRated запоминает оценку агендамента на доске пользователя. Повторная
// оценка отклоняется по доске, даже если свежий снимок получить не удалось.
func (s *Service) MarkRated(subject string, id, ratingID domain.ID) {
	if ratingID.IsZero() {
		return
	}
	s.Board(subject).markRated(id, ratingID)
}

// Board доска пользователя, создается при первом обращении
func (s *Service) Board(subject string) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[subject]
	if !ok {
		board = newBoard()
		s.boards[subject] = board
	}
	return board
}

// Forget удаляет доску после выхода пользователя
func (s *Service) Forget(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, subject)
}

// Card собирает карточку агендамента для роли на момент now
func Card(b *domain.Booking, role domain.Role, now time.Time) models.BookingCard {
	card := models.BookingCard{
		Booking:     b,
		Display:     b.Status.Display(),
		Actions:     b.Actions(role, now),
		CanRate:     role == domain.RoleCustomer && b.CanRate(),
		AddressText: b.Address.Format(),
	}

	if role == domain.RoleCustomer && b.Status == domain.StatusAccepted && b.PaymentMethod == domain.PaymentOnline {
		if card.Actions.Has(domain.ActionPayNow) {
			until := domain.NewDateTime(b.PaymentCutoffAt())
			card.PaymentAvailableUntil = &until
		} else {
			card.PaymentNotice = msgPaymentTooLate
		}
	}

	return card
}
