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

// TaskStore persists kanban tasks.
type TaskStore struct {
	tasks *mongo.Collection
}

var _ store.TaskStore = (*TaskStore)(nil)

func (s *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (*models.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var task models.Task
	err = s.tasks.FindOne(ctx, bson.M{"_id": oid}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskStore) Create(ctx context.Context, t *models.Task) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}

	result, err := s.tasks.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *TaskStore) Update(ctx context.Context, id string, patch store.Patch) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	set := sanitize(patch)
	set["updatedAt"] = time.Now()

	result, err := s.tasks.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := s.tasks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *TaskStore) UpdateColumns(ctx context.Context, moves []store.ColumnMove) (int64, error) {
	if len(moves) == 0 {
		return 0, nil
	}
	now := time.Now()
	ops := make([]mongo.WriteModel, 0, len(moves))
	for _, move := range moves {
		oid, err := parseID(move.ID)
		if err != nil {
			return 0, err
		}
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": oid}).
			SetUpdate(bson.M{"$set": bson.M{"column": move.Column, "updatedAt": now}}))
	}

	result, err := s.tasks.BulkWrite(ctx, ops)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
