// internal/models/models.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Topic is a top-level study subject. It owns its resources and carries a
// denormalized copy of its subtopics; the canonical subtopic records live in
// the subtopics collection.
type Topic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	Color       string             `bson:"color" json:"color"`
	Category    string             `bson:"category" json:"category"` // interview-prep | career-growth
	Resources   []Resource         `bson:"resources" json:"resources"`
	Subtopics   []Subtopic         `bson:"subtopics" json:"subtopics"`
	Progress    int                `bson:"progress" json:"progress"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Resource is a study material embedded in a Topic's resources array.
// Its ID is an opaque string rather than an ObjectID: resources are only
// ever addressed through the array they live in.
type Resource struct {
	ID          string    `bson:"_id" json:"_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty"`
	Type        string    `bson:"type" json:"type"`         // video | article | book | course | practice | other
	Status      string    `bson:"status" json:"status"`     // not-started | in-progress | completed
	Priority    string    `bson:"priority" json:"priority"` // low | medium | high
	Tags        []string  `bson:"tags" json:"tags"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Subtopic is a note-taking unit under a Topic. The same struct serves as the
// canonical record and the embedded projection on the parent Topic.
type Subtopic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	TopicID     string             `bson:"topicId" json:"topicId"`
	Notes       string             `bson:"notes" json:"notes"` // rich-text HTML
	Links       []Link             `bson:"links" json:"links"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Link is an external reference attached to a Subtopic.
type Link struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

// Task is a kanban board item. Column is not constrained server-side; the
// board repairs unknown values to "todo" on render.
type Task struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Column         string             `bson:"column" json:"column"`
	Priority       string             `bson:"priority" json:"priority"`
	Category       string             `bson:"category" json:"category"`
	Tags           []string           `bson:"tags" json:"tags"`
	TopicID        string             `bson:"topicId,omitempty" json:"topicId,omitempty"`
	ResourceID     string             `bson:"resourceId,omitempty" json:"resourceId,omitempty"`
	SubtopicID     string             `bson:"subtopicId,omitempty" json:"subtopicId,omitempty"`
	DueDate        *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	EstimatedHours int                `bson:"estimatedHours,omitempty" json:"estimatedHours,omitempty"`
	ActualHours    int                `bson:"actualHours,omitempty" json:"actualHours,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgressKey identifies one progress snapshot. At most one snapshot exists
// per key tuple.
type ProgressKey struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
	Week  int `bson:"week" json:"week"`
	Day   int `bson:"day" json:"day"`
}

// Progress is the tracker snapshot for a single day.
type Progress struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Year          int                `bson:"year" json:"year"`
	Month         int                `bson:"month" json:"month"`
	Week          int                `bson:"week" json:"week"`
	Day           int                `bson:"day" json:"day"`
	YearProgress  int                `bson:"yearProgress" json:"yearProgress"`
	MonthProgress int                `bson:"monthProgress" json:"monthProgress"`
	WeekProgress  int                `bson:"weekProgress" json:"weekProgress"`
	DayProgress   int                `bson:"dayProgress" json:"dayProgress"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Key returns the snapshot's key tuple.
func (p Progress) Key() ProgressKey {
	return ProgressKey{Year: p.Year, Month: p.Month, Week: p.Week, Day: p.Day}
}

// CurrentProgressKey derives the snapshot key for a point in time. Weeks are
// day-of-month sevenths, matching how the tracker buckets them.
func CurrentProgressKey(t time.Time) ProgressKey {
	return ProgressKey{
		Year:  t.Year(),
		Month: int(t.Month()),
		Week:  (t.Day() + 6) / 7,
		Day:   t.Day(),
	}
}
