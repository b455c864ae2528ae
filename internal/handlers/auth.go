package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/auth"
	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func SignUp(svc *auth.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.Email == "" || req.Password == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		identity, err := svc.SignUp(ctx, req.Email, req.Password, req.Name)
		if err != nil {
			respondAuthError(w, log, err, "Failed to sign up")
			return
		}
		RespondWithJSON(w, http.StatusCreated, map[string]interface{}{"user": identity})
	}
}

func SignIn(svc *auth.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.Email == "" || req.Password == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		identity, session, err := svc.SignIn(ctx, req.Email, req.Password)
		if err != nil {
			respondAuthError(w, log, err, "Failed to sign in")
			return
		}
		if err := svc.SetSessionCookie(w, session); err != nil {
			log.Error("failed to set session cookie", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to sign in")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"user":      identity,
			"expiresAt": session.ExpiresAt,
		})
	}
}

func SignOut(svc *auth.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := svc.SignOut(ctx, r); err != nil {
			log.Error("failed to delete session", zap.Error(err))
		}
		auth.ClearSessionCookie(w)
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// AuthStatus reports the session state. Always answers 200: callers probe it
// before the sign-in screen.
func AuthStatus(svc *auth.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		identity, session, err := svc.GetSession(ctx, r)
		if err != nil {
			log.Error("auth status lookup failed", zap.Error(err))
			RespondWithJSON(w, http.StatusOK, map[string]interface{}{
				"hasSession": false,
				"error":      "Failed to resolve session",
			})
			return
		}

		payload := map[string]interface{}{
			"hasSession": identity != nil,
			"timestamp":  time.Now().Format(time.RFC3339),
		}
		if identity != nil {
			payload["user"] = identity
			payload["expiresAt"] = session.ExpiresAt
		}
		RespondWithJSON(w, http.StatusOK, payload)
	}
}

// CreateAdmin bootstraps the single admin identity from the configured
// credentials. Registered for GET as well, an alias kept for easy probing.
func CreateAdmin(svc *auth.Service, adminEmail, adminPassword string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		identity, err := svc.SignUp(ctx, adminEmail, adminPassword, "Admin")
		if err != nil {
			RespondWithJSON(w, http.StatusBadRequest, map[string]string{
				"error":   "Failed to create admin user",
				"details": err.Error(),
			})
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Admin user created successfully",
			"email":   adminEmail,
			"user":    identity,
		})
	}
}

func respondAuthError(w http.ResponseWriter, log *zap.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, errs.ErrRegistrationRestricted), errors.Is(err, errs.ErrAccessRestricted):
		RespondWithError(w, log, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		RespondWithError(w, log, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrPasswordLength), errors.Is(err, errs.ErrAlreadyExists):
		RespondWithError(w, log, http.StatusBadRequest, err.Error())
	default:
		log.Error(failMsg, zap.Error(err))
		RespondWithError(w, log, http.StatusInternalServerError, failMsg)
	}
}
