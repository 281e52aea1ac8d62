package push

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/auth"
	pushService "github.com/m04kA/ajeitai-client/internal/service/push"
)

type fakePush struct {
	key        string
	registered []json.RawMessage
	err        error
}

func (f *fakePush) Enabled() bool     { return f.key != "" }
func (f *fakePush) PublicKey() string { return f.key }

func (f *fakePush) Register(token string, subscription json.RawMessage) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, subscription)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func withSession(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	sess, err := auth.StaticSession(signed)
	require.NoError(t, err)
	return req.WithContext(auth.WithSession(req.Context(), sess))
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want ConfigResponse
	}{
		{"enabled", "BPk3", ConfigResponse{Enabled: true, PublicKey: "BPk3"}},
		{"disabled", "", ConfigResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakePush{key: tt.key}, nopLogger{}).Config(rec, httptest.NewRequest(http.MethodGet, "/api/v1/push/config", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var got ConfigResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscribe(t *testing.T) {
	const subscription = `{"endpoint":"https://push.example/abc","keys":{"p256dh":"x","auth":"y"}}`

	t.Run("accepted", func(t *testing.T) {
		svc := &fakePush{key: "BPk3"}
		req := withSession(t, httptest.NewRequest(http.MethodPost, "/api/v1/push/subscribe", strings.NewReader(subscription)))
		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Subscribe(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		require.Len(t, svc.registered, 1)
		assert.JSONEq(t, subscription, string(svc.registered[0]))
	})

	t.Run("not json", func(t *testing.T) {
		svc := &fakePush{key: "BPk3"}
		req := withSession(t, httptest.NewRequest(http.MethodPost, "/api/v1/push/subscribe", strings.NewReader("endpoint=x")))
		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Subscribe(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.registered)
	})

	t.Run("rejected by service", func(t *testing.T) {
		svc := &fakePush{key: "BPk3", err: pushService.ErrInvalidSubscription}
		req := withSession(t, httptest.NewRequest(http.MethodPost, "/api/v1/push/subscribe", strings.NewReader(`{}`)))
		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Subscribe(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
