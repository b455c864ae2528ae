package models

import "time"

// Identity is the single admin account. Exactly one identity is ever created;
// the allow-listed email is enforced at sign-up and sign-in.
type Identity struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Session is a time-bounded proof of authentication, carried to the client as
// an HTTP-only cookie. Expiry slides forward on activity with a one-day
// renewal granularity.
type Session struct {
	Token       string    `bson:"token" json:"-"`
	IdentityID  string    `bson:"identityId" json:"identityId"`
	ExpiresAt   time.Time `bson:"expiresAt" json:"expiresAt"`
	RefreshedAt time.Time `bson:"refreshedAt" json:"refreshedAt"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
