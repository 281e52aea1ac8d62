package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// LoginFunc выполняет первичный логин сессии. Вызывается один раз в Init
// и после этого отбрасывается вместе с учетными данными.
type LoginFunc func(ctx context.Context) (*oauth2.Token, error)

// Session сессия одного пользователя. Создается явно, Init выполняется
// один раз, Logout закрывает сессию окончательно.
type Session struct {
	id   string
	auth Authenticator

	initOnce sync.Once
	initErr  error

	mu       sync.Mutex
	login    LoginFunc
	source   oauth2.TokenSource
	token    *oauth2.Token
	profile  *Profile
	closed   bool
	lastSeen time.Time
	// вызывается под mu после смены токена
	onRefresh func(*Session)
	now       func() time.Time
}

// NewSession сессия с функцией логина; токен получается в Init
func NewSession(id string, auth Authenticator, login LoginFunc) *Session {
	return &Session{
		id:    id,
		auth:  auth,
		login: login,
		now:   time.Now,
	}
}

// RestoreSession сессия из сохраненного refresh-токена
func RestoreSession(rec *domain.SessionRecord, auth Authenticator) (*Session, error) {
	tok := &oauth2.Token{
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       rec.TokenExpiry,
	}

	s := NewSession(rec.ID, auth, nil)
	s.lastSeen = rec.LastSeenAt
	s.initOnce.Do(func() {
		s.initErr = s.install(context.Background(), tok)
	})
	if s.initErr != nil {
		return nil, s.initErr
	}
	return s, nil
}

// StaticSession оборачивает чужой access-токен (Authorization: Bearer).
// Такой токен не обновляется: по истечении нужен новый логин.
func StaticSession(accessToken string) (*Session, error) {
	claims, err := ParseClaims(accessToken)
	if err != nil {
		return nil, err
	}

	tok := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
	if claims.ExpiresAt != nil {
		tok.Expiry = claims.ExpiresAt.Time
	}

	s := NewSession("", nil, nil)
	s.initOnce.Do(func() {
		s.token = tok
		s.source = oauth2.StaticTokenSource(tok)
		s.profile = ProfileFromClaims(claims)
	})
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Init выполняет логин один раз; повторные и конкурентные вызовы
// получают тот же результат
func (s *Session) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.mu.Lock()
		login := s.login
		s.login = nil
		s.mu.Unlock()

		if login == nil {
			s.initErr = ErrLoginRequired
			return
		}
		tok, err := login(ctx)
		if err != nil {
			s.initErr = err
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.initErr = s.install(context.Background(), tok)
	})
	return s.initErr
}

// install вызывается под mu или до публикации сессии
func (s *Session) install(ctx context.Context, tok *oauth2.Token) error {
	claims, err := ParseClaims(tok.AccessToken)
	if err != nil {
		return err
	}
	s.token = tok
	s.profile = ProfileFromClaims(claims)
	s.source = s.auth.TokenSource(ctx, tok)
	s.lastSeen = s.now()
	return nil
}

// Token актуальный access-токен. Истекший токен обновляется через
// refresh-токен; если обновление не удалось - ErrLoginRequired, и
// пользователь логинится заново.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrSessionClosed
	}
	if s.source == nil {
		return "", ErrNotInitialized
	}

	prev := s.token.AccessToken

	tok, err := s.source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: refresh failed: %v", ErrLoginRequired, err)
	}
	if !tok.Expiry.IsZero() && !tok.Valid() {
		return "", fmt.Errorf("%w: token expired", ErrLoginRequired)
	}

	s.lastSeen = s.now()

	if tok.AccessToken != prev {
		if claims, err := ParseClaims(tok.AccessToken); err == nil {
			s.profile = ProfileFromClaims(claims)
		}
		s.token = tok
		if s.onRefresh != nil {
			s.onRefresh(s)
		}
	}

	return tok.AccessToken, nil
}

// Authenticated true, пока сессия открыта и токен можно получить
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.token == nil {
		return false
	}
	return s.token.Valid() || s.token.RefreshToken != ""
}

// Profile пользователь из последнего access-токена
func (s *Session) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) HasRole(role domain.Role) bool {
	return s.Profile().HasRole(role)
}

// Logout отзывает сессию на провайдере и закрывает ее. После Logout
// Token всегда возвращает ErrSessionClosed.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.source = nil

	var refresh string
	if s.token != nil {
		refresh = s.token.RefreshToken
	}
	s.token = nil
	s.mu.Unlock()

	if s.auth == nil {
		return nil
	}
	return s.auth.Logout(ctx, refresh)
}

// Record снимок для SessionRepository
func (s *Session) Record() *domain.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordLocked()
}

func (s *Session) recordLocked() *domain.SessionRecord {
	rec := &domain.SessionRecord{
		ID:         s.id,
		LastSeenAt: s.lastSeen,
	}
	if s.profile != nil {
		rec.Subject = s.profile.Subject
	}
	if s.token != nil {
		rec.AccessToken = s.token.AccessToken
		rec.RefreshToken = s.token.RefreshToken
		rec.TokenExpiry = s.token.Expiry
	}
	return rec
}

// LastSeen время последнего успешного Token
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type sessionKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext сессия текущего запроса
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
