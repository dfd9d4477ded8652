package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes fits a whole plan with its exercises.
const DefaultMaxBodyBytes = 64 << 10

// LimitBody caps request bodies at maxBytes and drains whatever the
// handler left unread, so the connection can be reused.
func LimitBody(maxBytes int64) func(next http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
