package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind категория ошибки удаленного API
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindSubscriptionInactive
	KindForbidden
	KindNotFound
	KindValidation
	KindServer
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindSubscriptionInactive:
		return "subscription_inactive"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

var (
	// ErrUnauthenticated 401 - сессия отсутствует или истекла
	ErrUnauthenticated = errors.New("apierror: unauthenticated")

	// ErrSubscriptionInactive 402 - подписка престадора неактивна
	ErrSubscriptionInactive = errors.New("apierror: subscription inactive")

	// ErrForbidden 403 - недостаточно прав
	ErrForbidden = errors.New("apierror: forbidden")

	// ErrNotFound 404
	ErrNotFound = errors.New("apierror: not found")

	// ErrValidation прочие 4xx (бизнес-ошибки и валидация)
	ErrValidation = errors.New("apierror: request rejected")

	// ErrServer 5xx
	ErrServer = errors.New("apierror: server error")

	// ErrNetwork транспортная ошибка (нет ответа)
	ErrNetwork = errors.New("apierror: network error")
)

var sentinels = map[Kind]error{
	KindUnauthenticated:      ErrUnauthenticated,
	KindSubscriptionInactive: ErrSubscriptionInactive,
	KindForbidden:            ErrForbidden,
	KindNotFound:             ErrNotFound,
	KindValidation:           ErrValidation,
	KindServer:               ErrServer,
	KindNetwork:              ErrNetwork,
}

// Error ошибка вызова удаленного API: код, сообщение и исходный payload
type Error struct {
	StatusCode int
	Message    string
	Data       json.RawMessage

	kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// Kind категория ошибки
func (e *Error) Kind() Kind {
	return e.kind
}

// Is позволяет сравнивать ошибку с sentinel-ошибками пакета через errors.Is
func (e *Error) Is(target error) bool {
	if s, ok := sentinels[e.kind]; ok && s == target {
		return true
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindForStatus маппинг HTTP статуса на категорию
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthenticated
	case status == http.StatusPaymentRequired:
		return KindSubscriptionInactive
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// FromResponse строит ошибку по статусу и телу ответа.
// messageFields - имена полей payload, из которых берется сообщение (по порядку).
func FromResponse(status int, body []byte, messageFields ...string) *Error {
	e := &Error{
		StatusCode: status,
		kind:       KindForStatus(status),
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		e.Data = json.RawMessage(trimmed)

		var payload map[string]any
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			for _, field := range messageFields {
				if msg, ok := payload[field].(string); ok && msg != "" {
					e.Message = msg
					break
				}
			}
		}
	}

	if e.Message == "" {
		e.Message = fmt.Sprintf("Request failed with status %d", status)
	}

	return e
}

// Network оборачивает транспортную ошибку
func Network(err error) *Error {
	return &Error{
		Message: err.Error(),
		kind:    KindNetwork,
		cause:   err,
	}
}

// KindOf категория произвольной ошибки (KindUnknown, если это не *Error)
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.kind
	}
	return KindUnknown
}

// IsTerminal ошибки, после которых фоновый polling останавливается
func IsTerminal(err error) bool {
	switch KindOf(err) {
	case KindUnauthenticated, KindForbidden, KindNotFound:
		return true
	default:
		return false
	}
}

// UserMessage текст для показа пользователю (transient notification)
func UserMessage(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return msgGeneric
	}

	switch apiErr.kind {
	case KindUnauthenticated:
		return msgSessionExpired
	case KindForbidden:
		return msgForbidden
	case KindSubscriptionInactive, KindValidation, KindNotFound:
		return apiErr.Message
	default:
		return msgGeneric
	}
}

const (
	msgSessionExpired = "Sessão expirada. Faça login novamente."
	msgForbidden      = "Você não tem permissão para realizar esta ação."
	msgGeneric        = "Não foi possível completar a operação. Tente novamente."
)
