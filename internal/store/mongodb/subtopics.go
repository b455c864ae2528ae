package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// SubtopicStore keeps the canonical subtopics collection and the embedded
// copy on the parent topic in sync. The two writes are sequential and not
// wrapped in a transaction; a crash between them leaves the copies divergent
// until the next write to the same subtopic.
type SubtopicStore struct {
	subtopics *mongo.Collection
	topics    *mongo.Collection
}

var _ store.SubtopicStore = (*SubtopicStore)(nil)

func (s *SubtopicStore) Create(ctx context.Context, sub *models.Subtopic) error {
	topicOID, err := parseID(sub.TopicID)
	if err != nil {
		return err
	}
	// Verify the parent before inserting the canonical record, so a bad
	// topicId cannot strand an orphan subtopic.
	count, err := s.topics.CountDocuments(ctx, bson.M{"_id": topicOID})
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrNotFound
	}

	now := time.Now()
	sub.ID = primitive.NewObjectID()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Links == nil {
		sub.Links = []models.Link{}
	}

	if _, err := s.subtopics.InsertOne(ctx, sub); err != nil {
		return err
	}
	_, err = s.topics.UpdateOne(ctx,
		bson.M{"_id": topicOID},
		bson.M{"$push": bson.M{"subtopics": sub}},
	)
	return err
}

func (s *SubtopicStore) ListByTopic(ctx context.Context, topicID string) ([]models.Subtopic, error) {
	cursor, err := s.subtopics.Find(ctx,
		bson.M{"topicId": topicID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subtopics := []models.Subtopic{}
	if err := cursor.All(ctx, &subtopics); err != nil {
		return nil, err
	}
	return subtopics, nil
}

func (s *SubtopicStore) Get(ctx context.Context, id string) (*models.Subtopic, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var sub models.Subtopic
	err = s.subtopics.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubtopicStore) Update(ctx context.Context, id string, patch store.Patch) (*models.Subtopic, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := sanitize(patch)
	set["updatedAt"] = time.Now()

	result, err := s.subtopics.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, errs.ErrNotFound
	}

	// Re-read the canonical record and overwrite the embedded copy wholesale.
	var sub models.Subtopic
	if err := s.subtopics.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub); err != nil {
		return nil, err
	}
	topicOID, err := parseID(sub.TopicID)
	if err != nil {
		return nil, err
	}
	_, err = s.topics.UpdateOne(ctx,
		bson.M{"_id": topicOID},
		bson.M{"$set": bson.M{"subtopics.$[elem]": sub}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"elem._id": oid}},
		}),
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubtopicStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	var sub models.Subtopic
	err = s.subtopics.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.subtopics.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return err
	}
	topicOID, err := parseID(sub.TopicID)
	if err != nil {
		return err
	}
	_, err = s.topics.UpdateOne(ctx,
		bson.M{"_id": topicOID},
		bson.M{"$pull": bson.M{"subtopics": bson.M{"_id": oid}}},
	)
	return err
}
