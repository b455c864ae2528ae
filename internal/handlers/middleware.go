package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/auth"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogging logs method, path, status and duration for every request.
func RequestLogging(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RequireAuth guards privileged routes. Requests without a valid session are
// answered 401 without invoking the wrapped handler; an authenticated but
// unauthorized identity gets 403. The identity is forwarded via the request
// context.
func RequireAuth(svc *auth.Service, log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, session, err := svc.GetSession(r.Context(), r)
			if err != nil {
				log.Error("session lookup failed", zap.Error(err))
				RespondWithError(w, log, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if identity == nil {
				RespondWithError(w, log, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !svc.Authorized(identity) {
				RespondWithError(w, log, http.StatusForbidden, "Admin access required")
				return
			}
			// Reissue the cookie so sliding expiry renewals reach the client.
			if err := svc.SetSessionCookie(w, session); err != nil {
				log.Error("failed to refresh session cookie", zap.Error(err))
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
