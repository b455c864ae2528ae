package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
)

// CookieName is the session cookie set on sign-in.
const CookieName = "study_session"

// encodeSessionJWT wraps the opaque session token in a signed HS256 JWT so a
// forged cookie is rejected before any store lookup.
func encodeSessionJWT(secret []byte, token string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   token,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// decodeSessionJWT verifies the cookie value and returns the session token.
func decodeSessionJWT(secret []byte, value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}
	return claims.Subject, nil
}

// SetSessionCookie attaches the session to the response as an HTTP-only
// cookie whose lifetime matches the session expiry.
func (s *Service) SetSessionCookie(w http.ResponseWriter, session *models.Session) error {
	value, err := encodeSessionJWT(s.secret, session.Token, session.ExpiresAt)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
