package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// ProgressStore persists tracker snapshots, at most one per key tuple.
type ProgressStore struct {
	progress *mongo.Collection
}

var _ store.ProgressStore = (*ProgressStore)(nil)

func keyFilter(key models.ProgressKey) bson.M {
	return bson.M{"year": key.Year, "month": key.Month, "week": key.Week, "day": key.Day}
}

func (s *ProgressStore) GetOrCreate(ctx context.Context, key models.ProgressKey) (*models.Progress, error) {
	var snapshot models.Progress
	err := s.progress.FindOne(ctx, keyFilter(key)).Decode(&snapshot)
	if err == nil {
		return &snapshot, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	snapshot = models.Progress{
		Year:      key.Year,
		Month:     key.Month,
		Week:      key.Week,
		Day:       key.Day,
		UpdatedAt: time.Now(),
	}
	result, err := s.progress.InsertOne(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	snapshot.ID = result.InsertedID.(primitive.ObjectID)
	return &snapshot, nil
}

func (s *ProgressStore) Upsert(ctx context.Context, key models.ProgressKey, patch store.Patch) error {
	set := sanitize(patch)
	set["year"] = key.Year
	set["month"] = key.Month
	set["week"] = key.Week
	set["day"] = key.Day
	set["updatedAt"] = time.Now()

	_, err := s.progress.UpdateOne(ctx,
		keyFilter(key),
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}
