package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

// Коды ошибок в теле ответа gateway
const (
	CodeBadRequest           = "bad_request"
	CodeUnauthenticated      = "unauthenticated"
	CodeSessionExpired       = "session_expired"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
	CodeOnboardingRequired   = "onboarding_required"
	CodeSubscriptionInactive = "subscription_inactive"
	CodeConflict             = "conflict"
	CodeRejected             = "rejected"
	CodeLocationUnavailable  = "location_unavailable"
	CodeUpstream             = "upstream_error"
	CodeUpstreamUnavailable  = "upstream_unavailable"
	CodeInternal             = "internal_error"
)

const (
	msgInternal           = "Erro interno. Tente novamente mais tarde."
	msgUpstreamOffline    = "Serviço indisponível. Verifique sua conexão e tente novamente."
	msgOnboardingRequired = "Complete seu cadastro para continuar."
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON записывает data как JSON. nil тело не пишется.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthenticated, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternal)
}

// RespondAPIError ошибка основного API или chat-service: категория
// определяет статус и код, текст берется из apierror.UserMessage
func RespondAPIError(w http.ResponseWriter, err error) {
	status, code, message := ClassifyAPIError(err)
	RespondError(w, status, code, message)
}

// ClassifyAPIError статус, код и текст ответа для ошибки upstream
func ClassifyAPIError(err error) (int, string, string) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError, CodeInternal, msgInternal
	}

	message := apierror.UserMessage(err)
	switch apiErr.Kind() {
	case apierror.KindUnauthenticated:
		return http.StatusUnauthorized, CodeSessionExpired, message
	case apierror.KindSubscriptionInactive:
		return http.StatusPaymentRequired, CodeSubscriptionInactive, message
	case apierror.KindForbidden:
		return http.StatusForbidden, CodeForbidden, message
	case apierror.KindNotFound:
		return http.StatusNotFound, CodeNotFound, message
	case apierror.KindValidation:
		return apiErr.StatusCode, CodeRejected, message
	case apierror.KindNetwork:
		return http.StatusBadGateway, CodeUpstreamUnavailable, msgUpstreamOffline
	default:
		return http.StatusBadGateway, CodeUpstream, message
	}
}

// RespondProfileError как RespondAPIError, но 404 на эндпоинтах "мой
// профиль" означает, что пользователь еще не прошел онбординг
func RespondProfileError(w http.ResponseWriter, err error) {
	if apierror.KindOf(err) == apierror.KindNotFound {
		RespondError(w, http.StatusNotFound, CodeOnboardingRequired, msgOnboardingRequired)
		return
	}
	RespondAPIError(w, err)
}

// ErrEmptyBody запрос без тела
var ErrEmptyBody = errors.New("handlers: empty body")

// DecodeJSON читает тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
