package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/domain"
)

const (
	msgLoginRequired = "Faça login para continuar."
	msgSessionEnded  = "Sessão expirada. Faça login novamente."
)

// Auth сессия и актуальный токен текущего запроса. Если токен получить
// нельзя, пишет 401 и возвращает ok=false.
func Auth(w http.ResponseWriter, r *http.Request) (*auth.Session, string, bool) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		RespondUnauthorized(w, msgLoginRequired)
		return nil, "", false
	}

	token, err := sess.Token(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrLoginRequired), errors.Is(err, auth.ErrSessionClosed), errors.Is(err, auth.ErrNotInitialized):
			RespondError(w, http.StatusUnauthorized, CodeSessionExpired, msgSessionEnded)
		default:
			RespondError(w, http.StatusBadGateway, CodeUpstreamUnavailable, msgUpstreamOffline)
		}
		return nil, "", false
	}

	return sess, token, true
}

// Subject ключ пользователя для досок и логов
func Subject(sess *auth.Session) string {
	if p := sess.Profile(); p != nil {
		return p.Subject
	}
	return ""
}

// ActingRole роль, от имени которой показывается агендамент: prestador,
// если это единственная роль из пары cliente/prestador, иначе cliente.
// Явный ?as=prestador выбирает роль prestador при наличии.
func ActingRole(r *http.Request, sess *auth.Session) domain.Role {
	if r.URL.Query().Get("as") == string(domain.RoleProvider) && sess.HasRole(domain.RoleProvider) {
		return domain.RoleProvider
	}
	if sess.HasRole(domain.RoleProvider) && !sess.HasRole(domain.RoleCustomer) {
		return domain.RoleProvider
	}
	if sess.HasRole(domain.RoleCustomer) {
		return domain.RoleCustomer
	}
	role, _ := sess.Profile().PrimaryRole()
	return role
}

// PathID идентификатор из пути ({id})
func PathID(r *http.Request, name string) (domain.ID, bool) {
	id := domain.ID(mux.Vars(r)[name])
	return id, !id.IsZero()
}
