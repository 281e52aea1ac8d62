package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/ajeitai-client/pkg/restclient"
)

const HeaderRequestID = "X-Request-ID"

// RequestID берет X-Request-ID из запроса или генерирует новый. Id
// попадает в контекст и пробрасывается в вызовы upstream API.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(restclient.WithRequestID(r.Context(), id)))
	})
}
