package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Timeout bounds the request context. When the handler returns after the
// deadline without writing a response, a timeout error is written instead.
// Handlers are expected to honour ctx.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			if !wrapped.written && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				render.Status(r, http.StatusGatewayTimeout)
				render.JSON(w, r, errorBody(ErrorCodeRequestTimeout, ErrorMessageRequestTimeout))
			}
		})
	}
}
