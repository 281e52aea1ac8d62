package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

var testKey = []byte("test-signing-key")

func signToken(sub string, roles []string, expiry time.Time) string {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		GivenName: "Maria",
		Email:     "maria@example.com",
	}
	claims.RealmAccess.Roles = roles

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	if err != nil {
		panic(err)
	}
	return signed
}

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }

// fakeAuthenticator выдает подписанные HS256 токены; refreshFails ломает
// refresh grant, loginFails ломает password grant
type fakeAuthenticator struct {
	logins       atomic.Int32
	refreshes    atomic.Int32
	refreshFails atomic.Bool
	loginFails   atomic.Bool
	expired      atomic.Bool

	mu        sync.Mutex
	loggedOut []string
	logoutErr error
}

func (f *fakeAuthenticator) Login(ctx context.Context, username, password string) (*oauth2.Token, error) {
	f.logins.Add(1)
	if f.loginFails.Load() || password != "secret" {
		return nil, ErrInvalidCredentials
	}
	return f.issue(username), nil
}

func (f *fakeAuthenticator) issue(sub string) *oauth2.Token {
	expiry := time.Now().Add(time.Hour)
	if f.expired.Load() {
		expiry = time.Now().Add(-time.Minute)
	}
	return &oauth2.Token{
		AccessToken:  signToken(sub, []string{"cliente", "offline_access"}, expiry),
		RefreshToken: "refresh-" + sub,
		TokenType:    "Bearer",
		Expiry:       expiry,
	}
}

func (f *fakeAuthenticator) TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	return tokenSourceFunc(func() (*oauth2.Token, error) {
		if tok.Valid() {
			return tok, nil
		}
		f.refreshes.Add(1)
		if f.refreshFails.Load() {
			return nil, errors.New("invalid_grant")
		}
		return &oauth2.Token{
			AccessToken:  signToken("user-1", []string{"cliente"}, time.Now().Add(time.Hour)),
			RefreshToken: "refresh-rotated",
			Expiry:       time.Now().Add(time.Hour),
		}, nil
	})
}

func (f *fakeAuthenticator) Logout(ctx context.Context, refreshToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedOut = append(f.loggedOut, refreshToken)
	return f.logoutErr
}

func (f *fakeAuthenticator) logouts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.loggedOut...)
}

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]domain.SessionRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]domain.SessionRecord)}
}

func (r *fakeRepo) Save(ctx context.Context, rec *domain.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = *rec
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (*domain.SessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &rec, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, rec := range r.records {
		if rec.LastSeenAt.Before(before) {
			delete(r.records, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) get(id string) (domain.SessionRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	return rec, ok
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type gaugeStub struct {
	mu    sync.Mutex
	value float64
}

func (g *gaugeStub) Set(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}

func (g *gaugeStub) get() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}
