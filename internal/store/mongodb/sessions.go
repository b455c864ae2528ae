package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// SessionStore persists sessions keyed by their opaque token.
type SessionStore struct {
	sessions *mongo.Collection
}

var _ store.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Create(ctx context.Context, session *models.Session) error {
	_, err := s.sessions.InsertOne(ctx, session)
	return err
}

func (s *SessionStore) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.sessions.FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) UpdateExpiry(ctx context.Context, token string, expiresAt, refreshedAt time.Time) error {
	result, err := s.sessions.UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$set": bson.M{"expiresAt": expiresAt, "refreshedAt": refreshedAt}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	_, err := s.sessions.DeleteOne(ctx, bson.M{"token": token})
	return err
}
