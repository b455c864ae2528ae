package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// CreateKanbanTask is the board's create form: it fills column/priority/
// category defaults and treats the "none" sentinel from the link pickers as
// absent.
func CreateKanbanTask(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name           string     `json:"name"`
			Description    string     `json:"description"`
			Column         string     `json:"column"`
			Priority       string     `json:"priority"`
			Category       string     `json:"category"`
			Tags           []string   `json:"tags"`
			TopicID        string     `json:"topicId"`
			ResourceID     string     `json:"resourceId"`
			SubtopicID     string     `json:"subtopicId"`
			DueDate        *time.Time `json:"dueDate"`
			EstimatedHours int        `json:"estimatedHours"`
			ActualHours    int        `json:"actualHours"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.Name == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Name is required")
			return
		}

		task := models.Task{
			Name:           req.Name,
			Description:    req.Description,
			Column:         defaultStr(req.Column, "todo"),
			Priority:       defaultStr(req.Priority, "medium"),
			Category:       defaultStr(req.Category, "interview-prep"),
			Tags:           req.Tags,
			TopicID:        noneToEmpty(req.TopicID),
			ResourceID:     noneToEmpty(req.ResourceID),
			SubtopicID:     noneToEmpty(req.SubtopicID),
			DueDate:        req.DueDate,
			EstimatedHours: req.EstimatedHours,
			ActualHours:    req.ActualHours,
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := tasks.Create(ctx, &task); err != nil {
			log.Error("failed to create kanban task", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to create task")
			return
		}
		RespondWithJSON(w, http.StatusCreated, task)
	}
}

// BulkMoveTasks reassigns columns after a drag-and-drop. The moves are
// applied as one bulk write of independent updates; there is no transaction
// spanning them.
func BulkMoveTasks(tasks store.TaskStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Tasks []store.ColumnMove `json:"tasks"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tasks == nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid tasks data")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		modified, err := tasks.UpdateColumns(ctx, req.Tasks)
		if err != nil {
			RespondWithStoreError(w, log, err, "Task not found", "Failed to update tasks")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message":       "Tasks updated successfully",
			"modifiedCount": modified,
		})
	}
}

func KanbanSuggestions(suggestions store.SuggestionStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		result, err := suggestions.Suggestions(ctx)
		if err != nil {
			log.Error("failed to fetch kanban suggestions", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch suggestions")
			return
		}
		RespondWithJSON(w, http.StatusOK, result)
	}
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func noneToEmpty(s string) string {
	if s == "none" {
		return ""
	}
	return s
}
