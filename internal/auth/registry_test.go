package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRegistry_LoginAndGet(t *testing.T) {
	fa := &fakeAuthenticator{}
	gauge := &gaugeStub{}
	r := NewRegistry(fa, time.Hour, nopLogger{}, WithGauge(gauge))

	s, err := r.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1.0, gauge.get())

	got, err := r.Get(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Get(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_LoginInvalidCredentials(t *testing.T) {
	r := NewRegistry(&fakeAuthenticator{}, time.Hour, nopLogger{})

	_, err := r.Login(context.Background(), "user-1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Logout(t *testing.T) {
	fa := &fakeAuthenticator{}
	repo := newFakeRepo()
	r := NewRegistry(fa, time.Hour, nopLogger{}, WithRepository(repo))

	s, err := r.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		_, ok := repo.get(s.ID())
		return ok
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, r.Logout(context.Background(), s.ID()))

	_, err = r.Get(context.Background(), s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, ok := repo.get(s.ID())
	assert.False(t, ok)
	assert.Equal(t, []string{"refresh-user-1"}, fa.logouts())

	// неизвестная сессия
	assert.NoError(t, r.Logout(context.Background(), "unknown"))
}

func TestRegistry_RestoreFromRepository(t *testing.T) {
	fa := &fakeAuthenticator{}
	repo := newFakeRepo()

	first := NewRegistry(fa, time.Hour, nopLogger{}, WithRepository(repo))
	s, err := first.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		_, ok := repo.get(s.ID())
		return ok
	}, time.Second, 10*time.Millisecond)

	// новый процесс с тем же хранилищем
	second := NewRegistry(fa, time.Hour, nopLogger{}, WithRepository(repo))
	restored, err := second.Get(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, "user-1", restored.Profile().Subject)

	tok, err := restored.Token(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.EqualValues(t, 1, fa.logins.Load())
}

func TestRegistry_LoginSessionDoesNotReusePassword(t *testing.T) {
	fa := &fakeAuthenticator{}
	fa.expired.Store(true)
	fa.refreshFails.Store(true)
	r := NewRegistry(fa, time.Hour, nopLogger{})

	s, err := r.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)

	_, err = s.Token(context.Background())
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.EqualValues(t, 1, fa.logins.Load())
}

func TestRegistry_SweepIdle(t *testing.T) {
	fa := &fakeAuthenticator{}
	clock := &testClock{now: time.Now()}
	gauge := &gaugeStub{}
	r := NewRegistry(fa, 30*time.Minute, nopLogger{}, WithClock(clock.Now), WithGauge(gauge))

	idle, err := r.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	active, err := r.Login(context.Background(), "user-2", "secret")
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep(context.Background()))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1.0, gauge.get())

	_, err = r.Get(context.Background(), idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(context.Background(), active.ID())
	assert.NoError(t, err)
}
