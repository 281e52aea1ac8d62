package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", apierror.FromResponse(401, nil), http.StatusUnauthorized, CodeSessionExpired},
		{"subscription", apierror.FromResponse(402, nil), http.StatusPaymentRequired, CodeSubscriptionInactive},
		{"forbidden", apierror.FromResponse(403, nil), http.StatusForbidden, CodeForbidden},
		{"not found", apierror.FromResponse(404, nil), http.StatusNotFound, CodeNotFound},
		{"validation keeps status", apierror.FromResponse(409, nil), http.StatusConflict, CodeRejected},
		{"server", apierror.FromResponse(503, nil), http.StatusBadGateway, CodeUpstream},
		{"network", apierror.Network(errors.New("dial tcp: refused")), http.StatusBadGateway, CodeUpstreamUnavailable},
		{"wrapped", fmt.Errorf("bookings: get: %w", apierror.FromResponse(404, nil)), http.StatusNotFound, CodeNotFound},
		{"not an api error", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := ClassifyAPIError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestRespondAPIError_UsesServerMessageForValidation(t *testing.T) {
	err := apierror.FromResponse(400, []byte(`{"message":"Horário indisponível"}`), "message")

	rec := httptest.NewRecorder()
	RespondAPIError(rec, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeRejected, body.Code)
	assert.Equal(t, "Horário indisponível", body.Message)
}

func TestRespondProfileError_NotFoundMeansOnboarding(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondProfileError(rec, apierror.FromResponse(404, nil))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeOnboardingRequired, body.Code)

	rec = httptest.NewRecorder()
	RespondProfileError(rec, apierror.FromResponse(403, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Texto string `json:"texto"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"texto":"oi"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "oi", v.Texto)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	err := DecodeJSON(req, &v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}

func sessionWithRoles(t *testing.T, roles ...string) *auth.Session {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	claims.RealmAccess.Roles = roles
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	sess, err := auth.StaticSession(signed)
	require.NoError(t, err)
	return sess
}

func TestActingRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		query string
		want  domain.Role
	}{
		{"customer", []string{"cliente"}, "", domain.RoleCustomer},
		{"provider only", []string{"prestador"}, "", domain.RoleProvider},
		{"both defaults to customer", []string{"cliente", "prestador"}, "", domain.RoleCustomer},
		{"both with as=prestador", []string{"cliente", "prestador"}, "?as=prestador", domain.RoleProvider},
		{"as=prestador without role ignored", []string{"cliente"}, "?as=prestador", domain.RoleCustomer},
		{"admin", []string{"admin"}, "", domain.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1"+tt.query, nil)
			assert.Equal(t, tt.want, ActingRole(req, sessionWithRoles(t, tt.roles...)))
		})
	}
}

func TestAuth(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, _, ok := Auth(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("static session token", func(t *testing.T) {
		sess := sessionWithRoles(t, "cliente")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithSession(req.Context(), sess))

		rec := httptest.NewRecorder()
		got, token, ok := Auth(rec, req)

		require.True(t, ok)
		assert.Same(t, sess, got)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", Subject(got))
	})

	t.Run("token cannot be refreshed", func(t *testing.T) {
		claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		require.NoError(t, err)
		sess, err := auth.StaticSession(signed)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithSession(req.Context(), sess))
		rec := httptest.NewRecorder()
		_, _, ok := Auth(rec, req)

		require.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, CodeSessionExpired, body.Code)
	})
}
