package middleware

import (
	"net/http"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

const TokenHeader = "X-GYMLOG-TOKEN"

// AuthMiddlewareHandler checks the API token against its bcrypt hash.
// Tokens that passed once are remembered, so bcrypt runs only for new ones.
type AuthMiddlewareHandler struct {
	tokenHash    string
	allowedPaths map[string]bool
	verified     sync.Map
}

func NewAuthMiddlewareHandler(tokenHash string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenHash: tokenHash,
		allowedPaths: map[string]bool{
			"/gymlog/calendar":      true,
			"/gymlog/workout/timer": true,
		},
	}
}

func (h *AuthMiddlewareHandler) tokenValid(token string) bool {
	if _, ok := h.verified.Load(token); ok {
		return true
	}
	if !pkg.TokenMatches(token, h.tokenHash) {
		return false
	}
	h.verified.Store(token, struct{}{})
	return true
}

func requestToken(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}
	return ""
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] && r.Method == http.MethodGet {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := requestToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.tokenValid(token) {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s from %s", r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
