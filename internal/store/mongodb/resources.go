package mongodb

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// ResourceStore mutates the resources array embedded in topic documents.
// Every write is a single UpdateOne so sibling array elements are never
// rewritten.
type ResourceStore struct {
	topics *mongo.Collection
}

var _ store.ResourceStore = (*ResourceStore)(nil)

func (s *ResourceStore) Add(ctx context.Context, topicID string, r *models.Resource) error {
	oid, err := parseID(topicID)
	if err != nil {
		return err
	}
	rid, err := uuid.NewV4()
	if err != nil {
		return err
	}
	now := time.Now()
	r.ID = rid.String()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = "not-started"
	}
	if r.Priority == "" {
		r.Priority = "medium"
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	result, err := s.topics.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"resources": r}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *ResourceStore) Update(ctx context.Context, resourceID string, patch store.Patch) error {
	set := bson.M{"resources.$.updatedAt": time.Now()}
	for k, v := range sanitize(patch) {
		set["resources.$."+k] = v
	}

	result, err := s.topics.UpdateOne(ctx,
		bson.M{"resources._id": resourceID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *ResourceStore) Remove(ctx context.Context, resourceID string) error {
	result, err := s.topics.UpdateOne(ctx,
		bson.M{"resources._id": resourceID},
		bson.M{"$pull": bson.M{"resources": bson.M{"_id": resourceID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
