package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// IdentityStore persists the admin identity in the identities collection.
type IdentityStore struct {
	identities *mongo.Collection
}

var _ store.IdentityStore = (*IdentityStore)(nil)

// Create inserts the identity. Only one identity may ever exist; any insert
// after the first fails with ErrAlreadyExists.
func (s *IdentityStore) Create(ctx context.Context, id *models.Identity) error {
	count, err := s.identities.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.ErrAlreadyExists
	}
	_, err = s.identities.InsertOne(ctx, id)
	return err
}

func (s *IdentityStore) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var identity models.Identity
	err := s.identities.FindOne(ctx, bson.M{"email": email}).Decode(&identity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *IdentityStore) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	var identity models.Identity
	err := s.identities.FindOne(ctx, bson.M{"_id": id}).Decode(&identity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *IdentityStore) Count(ctx context.Context) (int64, error) {
	return s.identities.CountDocuments(ctx, bson.M{})
}
