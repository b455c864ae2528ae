// Package mongodb implements the store contracts on top of the MongoDB
// collections topics, subtopics, tasks, progress, identities and sessions.
package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// Store bundles the per-collection store implementations over one database.
type Store struct {
	Topics      *TopicStore
	Resources   *ResourceStore
	Subtopics   *SubtopicStore
	Tasks       *TaskStore
	Progress    *ProgressStore
	Suggestions *SuggestionStore
	Identities  *IdentityStore
	Sessions    *SessionStore
}

// New wires the stores against db.
func New(db *mongo.Database) *Store {
	topics := db.Collection("topics")
	return &Store{
		Topics:      &TopicStore{topics: topics},
		Resources:   &ResourceStore{topics: topics},
		Subtopics:   &SubtopicStore{subtopics: db.Collection("subtopics"), topics: topics},
		Tasks:       &TaskStore{tasks: db.Collection("tasks")},
		Progress:    &ProgressStore{progress: db.Collection("progress")},
		Suggestions: &SuggestionStore{topics: topics},
		Identities:  &IdentityStore{identities: db.Collection("identities")},
		Sessions:    &SessionStore{sessions: db.Collection("sessions")},
	}
}

// parseID converts a hex identifier, mapping malformed input to ErrInvalidID
// so the route layer can answer 400 instead of 404.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}
	return oid, nil
}

// sanitize strips fields a caller must not overwrite from a patch.
func sanitize(patch store.Patch) store.Patch {
	cleaned := store.Patch{}
	for k, v := range patch {
		if k == "_id" || k == "createdAt" {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}
