// Package auth implements the single-admin identity and session service.
// A configured allow-listed email gates both sign-up and sign-in; sessions
// are stored server-side and carried to the client as a signed cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

const (
	// SessionTTL is the fixed session expiry window.
	SessionTTL = 7 * 24 * time.Hour
	// RenewAfter is the sliding-renewal granularity: expiry is only pushed
	// forward when at least this much time has passed since the last renewal.
	RenewAfter = 24 * time.Hour

	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// ErrPasswordLength rejects passwords outside the accepted length range.
var ErrPasswordLength = fmt.Errorf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)

// Service issues and validates sessions for the single authorized identity.
type Service struct {
	identities store.IdentityStore
	sessions   store.SessionStore
	adminEmail string
	secret     []byte

	now func() time.Time
}

// New constructs the service. adminEmail is the allow-listed address; secret
// signs the session cookie.
func New(identities store.IdentityStore, sessions store.SessionStore, adminEmail string, secret []byte) *Service {
	return &Service{
		identities: identities,
		sessions:   sessions,
		adminEmail: adminEmail,
		secret:     secret,
		now:        time.Now,
	}
}

// SignUp creates the admin identity. Any email other than the allow-listed
// address fails with ErrRegistrationRestricted and persists nothing; a second
// successful sign-up is impossible.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*models.Identity, error) {
	if email != s.adminEmail {
		return nil, errs.ErrRegistrationRestricted
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return nil, ErrPasswordLength
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:           uid.String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    s.now(),
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// SignIn authenticates the admin and opens a new session. The allow-list is
// checked again here so a stray identity record can never be used to log in.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Identity, *models.Session, error) {
	if email != s.adminEmail {
		return nil, nil, errs.ErrAccessRestricted
	}

	identity, err := s.identities.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil, errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, nil, errs.ErrInvalidCredentials
	}

	token, err := uuid.NewV4()
	if err != nil {
		return nil, nil, err
	}
	now := s.now()
	session := &models.Session{
		Token:       token.String(),
		IdentityID:  identity.ID,
		ExpiresAt:   now.Add(SessionTTL),
		RefreshedAt: now,
		CreatedAt:   now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	return identity, session, nil
}

// GetSession resolves the session cookie on r. A missing, malformed, unknown
// or expired session yields (nil, nil, nil): no session is a normal outcome,
// not a failure. Valid sessions slide their expiry forward once per
// RenewAfter period.
func (s *Service) GetSession(ctx context.Context, r *http.Request) (*models.Identity, *models.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil, nil
	}
	token, err := decodeSessionJWT(s.secret, cookie.Value)
	if err != nil {
		return nil, nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	now := s.now()
	if !now.Before(session.ExpiresAt) {
		return nil, nil, nil
	}

	identity, err := s.identities.GetByID(ctx, session.IdentityID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if now.Sub(session.RefreshedAt) >= RenewAfter {
		session.ExpiresAt = now.Add(SessionTTL)
		session.RefreshedAt = now
		if err := s.sessions.UpdateExpiry(ctx, session.Token, session.ExpiresAt, session.RefreshedAt); err != nil {
			return nil, nil, err
		}
	}
	return identity, session, nil
}

// SignOut deletes the session referenced by the request cookie, if any.
func (s *Service) SignOut(ctx context.Context, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	token, err := decodeSessionJWT(s.secret, cookie.Value)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authorized is the capability predicate gating privileged operations. Today
// it admits exactly the allow-listed identity; a multi-user model would
// change only this check.
func (s *Service) Authorized(identity *models.Identity) bool {
	return identity != nil && identity.Email == s.adminEmail
}
