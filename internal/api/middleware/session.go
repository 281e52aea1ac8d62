package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/domain"
)

const (
	msgLoginRequired  = "Faça login para continuar."
	msgSessionExpired = "Sessão expirada. Faça login novamente."
	msgForbidden      = "Você não tem permissão para acessar esta página."
)

// Session кладет в контекст сессию из заголовка Authorization: Bearer или
// из cookie. Запрос без сессии получает 401.
func Session(store SessionStore, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := resolve(r, store, cookieName)
			if err != nil {
				switch {
				case errors.Is(err, errNoCredentials):
					handlers.RespondUnauthorized(w, msgLoginRequired)
				case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrInvalidToken),
					errors.Is(err, auth.ErrLoginRequired), errors.Is(err, auth.ErrSessionClosed):
					logger.Warn("%s %s - Session rejected: %v", r.Method, r.URL.Path, err)
					handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeSessionExpired, msgSessionExpired)
				default:
					logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

var errNoCredentials = errors.New("middleware: no credentials")

func resolve(r *http.Request, store SessionStore, cookieName string) (*auth.Session, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return nil, auth.ErrInvalidToken
		}
		return store.FromBearer(strings.TrimSpace(token))
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, errNoCredentials
	}
	return store.Get(r.Context(), cookie.Value)
}

// RequireRole пропускает запрос, если у пользователя есть хотя бы одна из
// ролей. Должен стоять после Session.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := auth.FromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgLoginRequired)
				return
			}
			for _, role := range roles {
				if sess.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}
