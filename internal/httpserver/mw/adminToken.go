package mw

import (
	"crypto/subtle"
	"net/http"

	"github.com/hinatano/liveboard/internal/logger"
)

// AdminTokenHeader carries the shared secret on admin write requests.
const AdminTokenHeader = "X-Admin-Token"

// RequireToken rejects requests whose X-Admin-Token header does not
// match the configured secret. An empty secret disables the check
// (passthrough), which is only acceptable on trusted networks.
func RequireToken(token string, log logger.Logger) func(http.Handler) http.Handler {
	if token == "" {
		log.Warn("admin token is empty, admin endpoints are unauthenticated")
		return func(next http.Handler) http.Handler { return next }
	}

	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(AdminTokenHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				log.Warn("admin request rejected: bad token",
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", r.RemoteAddr))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
