package middleware

import (
	"net/http"

	"khatreez/internal/reqctx"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID кладёт идентификатор запроса в контекст и ответный заголовок.
// Пришедший от клиента заголовок переиспользуем, чтобы склеивать логи с фронтендом.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
