package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kalyondo/guardianre-website/internal/ctxkeys"
)

// RequestID assigns every request an identifier, reusing the one an
// upstream proxy already set. The id is stored in the context for log
// lines and echoed back in the X-Request-Id response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-Id", id)

		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
