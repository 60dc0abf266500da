package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
)

const DeviceKeyHeader = "X-Device-Key"

// DeviceAuth rejects requests that do not carry the shared device key.
func DeviceAuth(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(DeviceKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, errorBody(ErrorCodeUnauthorized, ErrorMessageUnauthorized))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
