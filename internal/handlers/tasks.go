package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

func ListTasks(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		list, err := tasks.List(ctx)
		if err != nil {
			log.Error("failed to fetch tasks", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch tasks")
			return
		}
		RespondWithJSON(w, http.StatusOK, list)
	}
}

func CreateTask(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var task models.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if task.Name == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Name is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := tasks.Create(ctx, &task); err != nil {
			log.Error("failed to create task", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to create task")
			return
		}
		RespondWithJSON(w, http.StatusCreated, task)
	}
}

func GetTask(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		task, err := tasks.Get(ctx, mux.Vars(r)["id"])
		if err != nil {
			RespondWithStoreError(w, log, err, "Task not found", "Failed to fetch task")
			return
		}
		RespondWithJSON(w, http.StatusOK, task)
	}
}

func UpdateTask(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch store.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := tasks.Update(ctx, mux.Vars(r)["id"], patch); err != nil {
			RespondWithStoreError(w, log, err, "Task not found", "Failed to update task")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Task updated successfully"})
	}
}

func DeleteTask(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := tasks.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			RespondWithStoreError(w, log, err, "Task not found", "Failed to delete task")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
	}
}

// TaskSuggestions builds the link-picker join in process from the full topic
// list; the kanban variant pushes the same join down to the database.
func TaskSuggestions(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		list, err := topics.List(ctx)
		if err != nil {
			log.Error("failed to fetch suggestions", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch suggestions")
			return
		}

		suggestions := models.Suggestions{
			Topics:    []models.TopicSuggestion{},
			Resources: []models.ResourceSuggestion{},
			Subtopics: []models.SubtopicSuggestion{},
		}
		for _, topic := range list {
			suggestions.Topics = append(suggestions.Topics, models.TopicSuggestion{
				ID:       topic.ID,
				Title:    topic.Title,
				Category: topic.Category,
				Icon:     topic.Icon,
				Color:    topic.Color,
			})
			for _, resource := range topic.Resources {
				suggestions.Resources = append(suggestions.Resources, models.ResourceSuggestion{
					ID:         resource.ID,
					Title:      resource.Title,
					Type:       resource.Type,
					Status:     resource.Status,
					Priority:   resource.Priority,
					TopicID:    topic.ID,
					TopicTitle: topic.Title,
				})
			}
			for _, subtopic := range topic.Subtopics {
				suggestions.Subtopics = append(suggestions.Subtopics, models.SubtopicSuggestion{
					ID:         subtopic.ID,
					Title:      subtopic.Title,
					TopicID:    topic.ID,
					TopicTitle: topic.Title,
				})
			}
		}
		RespondWithJSON(w, http.StatusOK, suggestions)
	}
}
