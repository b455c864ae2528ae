package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// SuggestionStore joins topics with their embedded arrays server-side, via
// $unwind/$project aggregations over the topics collection.
type SuggestionStore struct {
	topics *mongo.Collection
}

var _ store.SuggestionStore = (*SuggestionStore)(nil)

func (s *SuggestionStore) Suggestions(ctx context.Context) (*models.Suggestions, error) {
	suggestions := &models.Suggestions{
		Topics:    []models.TopicSuggestion{},
		Resources: []models.ResourceSuggestion{},
		Subtopics: []models.SubtopicSuggestion{},
	}

	cursor, err := s.topics.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{
		"_id": 1, "title": 1, "category": 1, "icon": 1, "color": 1,
	}))
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &suggestions.Topics); err != nil {
		return nil, err
	}

	cursor, err = s.topics.Aggregate(ctx, []bson.M{
		{"$unwind": "$resources"},
		{"$project": bson.M{
			"_id":        "$resources._id",
			"title":      "$resources.title",
			"type":       "$resources.type",
			"status":     "$resources.status",
			"priority":   "$resources.priority",
			"topicId":    "$_id",
			"topicTitle": "$title",
		}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &suggestions.Resources); err != nil {
		return nil, err
	}

	cursor, err = s.topics.Aggregate(ctx, []bson.M{
		{"$unwind": "$subtopics"},
		{"$project": bson.M{
			"_id":        "$subtopics._id",
			"title":      "$subtopics.title",
			"topicId":    "$_id",
			"topicTitle": "$title",
		}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &suggestions.Subtopics); err != nil {
		return nil, err
	}

	return suggestions, nil
}
