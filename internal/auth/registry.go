package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

const persistTimeout = 5 * time.Second

// Registry живые сессии gateway по идентификатору из cookie.
// repo опционален: без него сессии теряются при рестарте.
type Registry struct {
	auth   Authenticator
	repo   SessionRepository
	ttl    time.Duration
	gauge  Gauge
	logger Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// RegistryOption настройка Registry
type RegistryOption func(*Registry)

func WithRepository(repo SessionRepository) RegistryOption {
	return func(r *Registry) { r.repo = repo }
}

func WithGauge(g Gauge) RegistryOption {
	return func(r *Registry) { r.gauge = g }
}

func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

func NewRegistry(auth Authenticator, ttl time.Duration, logger Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		auth:     auth,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Login создает и инициализирует новую сессию. Пароль используется
// только в Init и в сессии не хранится.
func (r *Registry) Login(ctx context.Context, username, password string) (*Session, error) {
	login := func(ctx context.Context) (*oauth2.Token, error) {
		return r.auth.Login(ctx, username, password)
	}

	s := NewSession(uuid.NewString(), r.auth, login)
	s.now = r.now
	if err := s.Init(ctx); err != nil {
		return nil, err
	}

	r.track(s)
	r.persist(s.Record())

	r.logger.Info("auth: session %s opened for subject %s", s.ID(), s.Profile().Subject)
	return s, nil
}

// FromBearer сессия для запроса с готовым access-токеном.
// В реестре не хранится.
func (r *Registry) FromBearer(token string) (*Session, error) {
	return StaticSession(token)
}

// Get сессия по идентификатору. Если сессии нет в памяти, она
// восстанавливается из репозитория (только refresh, без повторного логина).
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		if r.expired(s) {
			r.drop(ctx, s)
			return nil, ErrSessionNotFound
		}
		return s, nil
	}

	if r.repo == nil {
		return nil, ErrSessionNotFound
	}

	rec, err := r.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth: restore session %s: %w", id, err)
	}
	if r.ttl > 0 && r.now().Sub(rec.LastSeenAt) > r.ttl {
		_ = r.repo.Delete(ctx, id)
		return nil, ErrSessionNotFound
	}

	restored, err := RestoreSession(rec, r.auth)
	if err != nil {
		_ = r.repo.Delete(ctx, id)
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	restored.now = r.now

	// конкурентный Get мог уже восстановить ту же сессию
	r.mu.Lock()
	if existing, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		return existing, nil
	}
	r.sessions[id] = restored
	r.mu.Unlock()
	r.attach(restored)
	r.updateGauge()

	r.logger.Info("auth: session %s restored from storage", id)
	return restored, nil
}

// Logout закрывает сессию на провайдере и удаляет ее отовсюду
func (r *Registry) Logout(ctx context.Context, id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	r.updateGauge()

	if r.repo != nil {
		if err := r.repo.Delete(ctx, id); err != nil {
			r.logger.Warn("auth: delete session %s: %v", id, err)
		}
	}
	if !ok {
		return nil
	}

	if err := s.Logout(ctx); err != nil {
		r.logger.Warn("auth: provider logout for session %s: %v", id, err)
		return err
	}
	r.logger.Info("auth: session %s closed", id)
	return nil
}

// Sweep удаляет сессии, неактивные дольше ttl
func (r *Registry) Sweep(ctx context.Context) int {
	if r.ttl <= 0 {
		return 0
	}

	var idle []*Session
	r.mu.RLock()
	for _, s := range r.sessions {
		if r.expired(s) {
			idle = append(idle, s)
		}
	}
	r.mu.RUnlock()

	for _, s := range idle {
		r.drop(ctx, s)
	}

	if r.repo != nil {
		n, err := r.repo.DeleteIdle(ctx, r.now().Add(-r.ttl))
		if err != nil {
			r.logger.Warn("auth: sweep stored sessions: %v", err)
		} else if n > 0 {
			r.logger.Info("auth: swept %d stored sessions", n)
		}
	}

	return len(idle)
}

// RunJanitor периодически вызывает Sweep до отмены ctx
func (r *Registry) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(ctx); n > 0 {
				r.logger.Info("auth: swept %d idle sessions", n)
			}
		}
	}
}

// Len число сессий в памяти
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *Session) bool {
	return r.ttl > 0 && r.now().Sub(s.LastSeen()) > r.ttl
}

func (r *Registry) drop(ctx context.Context, s *Session) {
	r.mu.Lock()
	delete(r.sessions, s.ID())
	r.mu.Unlock()
	r.updateGauge()

	if r.repo != nil {
		if err := r.repo.Delete(ctx, s.ID()); err != nil {
			r.logger.Warn("auth: delete idle session %s: %v", s.ID(), err)
		}
	}
	if err := s.Logout(ctx); err != nil {
		r.logger.Warn("auth: provider logout for idle session %s: %v", s.ID(), err)
	}
}

func (r *Registry) track(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	r.attach(s)
	r.updateGauge()
}

// attach сохраняет сессию после каждого обновления токена
func (r *Registry) attach(s *Session) {
	if r.repo == nil {
		return
	}
	s.mu.Lock()
	s.onRefresh = func(s *Session) {
		r.persist(s.recordLocked())
	}
	s.mu.Unlock()
}

// persist асинхронно: запись не должна задерживать запрос пользователя
func (r *Registry) persist(rec *domain.SessionRecord) {
	if r.repo == nil || rec.RefreshToken == "" {
		return
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := r.repo.Save(ctx, rec); err != nil {
			r.logger.Error("auth: persist session %s: %v", rec.ID, err)
		}
	}()
}

func (r *Registry) updateGauge() {
	if r.gauge == nil {
		return
	}
	r.gauge.Set(float64(r.Len()))
}
