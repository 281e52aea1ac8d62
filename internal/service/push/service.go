package push

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// ErrInvalidSubscription тело не является JSON-объектом подписки
var ErrInvalidSubscription = errors.New("push: invalid subscription")

const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultDisabled = "disabled"
)

// Service пересылает push-подписки браузера в API. Работает в фоне и
// никогда не блокирует запрос пользователя; ошибки только логируются.
// Пустой VAPID ключ отключает сервис.
type Service struct {
	api       APIClient
	publicKey string
	timeout   time.Duration
	observer  Observer
	logger    Logger

	wg sync.WaitGroup
}

func NewService(api APIClient, publicKey string, timeout time.Duration, observer Observer, logger Logger) *Service {
	return &Service{
		api:       api,
		publicKey: publicKey,
		timeout:   timeout,
		observer:  observer,
		logger:    logger,
	}
}

// Enabled false, если VAPID ключ не настроен
func (s *Service) Enabled() bool {
	return s != nil && s.publicKey != ""
}

// PublicKey ключ для PushManager.subscribe в браузере
func (s *Service) PublicKey() string {
	return s.publicKey
}

// Register запускает отправку подписки и сразу возвращается.
// Ошибка возвращается только для некорректного тела.
func (s *Service) Register(token string, subscription json.RawMessage) error {
	if !s.Enabled() {
		s.observe(ResultDisabled)
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(subscription, &probe); err != nil || probe["endpoint"] == nil {
		return ErrInvalidSubscription
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// контекст запроса к этому моменту уже отменен
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.api.SubscribePush(ctx, token, subscription); err != nil {
			s.logger.Warn("push: subscription not registered: %v", err)
			s.observe(ResultError)
			return
		}
		s.observe(ResultOK)
		s.logger.Info("push: subscription registered")
	}()

	return nil
}

// Wait дожидается фоновых отправок (graceful shutdown, тесты)
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) observe(result string) {
	if s.observer != nil {
		s.observer.ObservePush(result)
	}
}
