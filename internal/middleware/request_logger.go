package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/postpilot/postpilot/internal/logger"
)

// SensitiveQueryParams are query parameters that should be redacted in logs.
// OAuth codes and bearer tokens travel as query params on the auth routes.
var SensitiveQueryParams = []string{"token", "code", "client_secret", "api_key", "apiKey"}

// RequestLogger logs HTTP requests with sensitive query params redacted.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			defer func() {
				log.Info("request",
					"id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"url", redactSensitiveParams(r.URL),
					"remote", r.RemoteAddr,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(t1),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// redactSensitiveParams returns a URL string with sensitive query parameters redacted
func redactSensitiveParams(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}

	query := u.Query()
	hasRedacted := false

	for _, param := range SensitiveQueryParams {
		if query.Has(param) {
			query.Set(param, "[REDACTED]")
			hasRedacted = true
		}
	}

	if !hasRedacted {
		return u.RequestURI()
	}

	return u.Path + "?" + query.Encode()
}
