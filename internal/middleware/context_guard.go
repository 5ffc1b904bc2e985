package middleware

import (
	"log/slog"
	"net/http"

	"github.com/maxburleigh/portfolio/internal/pkg/web"
)

// ContextGuard answers 408 to requests whose context is already canceled or
// expired, without calling next. It has to run outside RecordResponse: a
// SafeResponseWriter drops every write once the context is done.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			slog.Warn("request context is done", "reason", err, "url", r.URL.String())
			const status = http.StatusRequestTimeout
			web.Send(w, status, web.MimeText, []byte(http.StatusText(status)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
