// Package store defines the persistence contracts for the dashboard entities.
// MongoDB implementations live in store/mongodb; tests substitute fakes.
package store

import (
	"context"
	"time"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
)

// Patch is a shallow field-overwrite merge. Keys are document field names;
// implementations stamp updatedAt and strip immutable keys themselves.
type Patch map[string]any

// ColumnMove is one entry of a bulk kanban column reassignment.
type ColumnMove struct {
	ID     string `json:"_id"`
	Column string `json:"column"`
}

// TopicStore persists top-level study topics.
type TopicStore interface {
	List(ctx context.Context) ([]models.Topic, error)
	Get(ctx context.Context, id string) (*models.Topic, error)
	// Create fills ID and timestamps on t.
	Create(ctx context.Context, t *models.Topic) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

// ResourceStore mutates resources embedded in a topic's resources array.
// Resources are located by the id of the array element, not by topic.
type ResourceStore interface {
	// Add fills ID, defaults and timestamps on r and appends it to the topic.
	Add(ctx context.Context, topicID string, r *models.Resource) error
	// Update rewrites only the matching array element, leaving siblings untouched.
	Update(ctx context.Context, resourceID string, patch Patch) error
	Remove(ctx context.Context, resourceID string) error
}

// SubtopicStore persists canonical subtopic records and keeps the parent
// topic's embedded copy in sync. Both writes are sequential and
// untransacted; after either Create, Update or Delete returns, the two
// copies agree.
type SubtopicStore interface {
	Create(ctx context.Context, s *models.Subtopic) error
	ListByTopic(ctx context.Context, topicID string) ([]models.Subtopic, error)
	Get(ctx context.Context, id string) (*models.Subtopic, error)
	// Update returns the canonical record after the merge.
	Update(ctx context.Context, id string, patch Patch) (*models.Subtopic, error)
	Delete(ctx context.Context, id string) error
}

// TaskStore persists kanban tasks.
type TaskStore interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, t *models.Task) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
	// UpdateColumns applies one update per move with no transaction spanning
	// them; a failure may leave earlier moves applied. Returns the number of
	// tasks modified.
	UpdateColumns(ctx context.Context, moves []ColumnMove) (int64, error)
}

// ProgressStore persists per-day tracker snapshots, at most one per key.
type ProgressStore interface {
	// GetOrCreate returns the snapshot for key, inserting a zeroed one if absent.
	GetOrCreate(ctx context.Context, key models.ProgressKey) (*models.Progress, error)
	Upsert(ctx context.Context, key models.ProgressKey, patch Patch) error
}

// SuggestionStore produces the aggregated topic/resource/subtopic join.
type SuggestionStore interface {
	Suggestions(ctx context.Context) (*models.Suggestions, error)
}

// IdentityStore persists the admin identity. Create enforces the
// single-identity invariant.
type IdentityStore interface {
	Create(ctx context.Context, id *models.Identity) error
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	Count(ctx context.Context) (int64, error)
}

// SessionStore persists active sessions keyed by their opaque token.
type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	UpdateExpiry(ctx context.Context, token string, expiresAt, refreshedAt time.Time) error
	Delete(ctx context.Context, token string) error
}
