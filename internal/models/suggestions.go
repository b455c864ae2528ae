package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Suggestions is the read-only join of topics with their embedded resources
// and subtopics, shaped for the task/kanban link pickers.
type Suggestions struct {
	Topics    []TopicSuggestion    `json:"topics"`
	Resources []ResourceSuggestion `json:"resources"`
	Subtopics []SubtopicSuggestion `json:"subtopics"`
}

type TopicSuggestion struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Title    string             `bson:"title" json:"title"`
	Category string             `bson:"category" json:"category"`
	Icon     string             `bson:"icon" json:"icon"`
	Color    string             `bson:"color" json:"color"`
}

type ResourceSuggestion struct {
	ID         string             `bson:"_id" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	Type       string             `bson:"type" json:"type"`
	Status     string             `bson:"status" json:"status"`
	Priority   string             `bson:"priority" json:"priority"`
	TopicID    primitive.ObjectID `bson:"topicId" json:"topicId"`
	TopicTitle string             `bson:"topicTitle" json:"topicTitle"`
}

type SubtopicSuggestion struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	TopicID    primitive.ObjectID `bson:"topicId" json:"topicId"`
	TopicTitle string             `bson:"topicTitle" json:"topicTitle"`
}
