package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// TopicStore persists topics in the topics collection.
type TopicStore struct {
	topics *mongo.Collection
}

var _ store.TopicStore = (*TopicStore)(nil)

func (s *TopicStore) List(ctx context.Context) ([]models.Topic, error) {
	cursor, err := s.topics.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	topics := []models.Topic{}
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *TopicStore) Get(ctx context.Context, id string) (*models.Topic, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var topic models.Topic
	err = s.topics.FindOne(ctx, bson.M{"_id": oid}).Decode(&topic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *TopicStore) Create(ctx context.Context, t *models.Topic) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Resources == nil {
		t.Resources = []models.Resource{}
	}
	if t.Subtopics == nil {
		t.Subtopics = []models.Subtopic{}
	}

	result, err := s.topics.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *TopicStore) Update(ctx context.Context, id string, patch store.Patch) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	set := sanitize(patch)
	set["updatedAt"] = time.Now()

	result, err := s.topics.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *TopicStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := s.topics.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
