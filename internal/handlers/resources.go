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

func CreateResource(resources store.ResourceStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TopicID string `json:"topicId"`
			models.Resource
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.TopicID == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Topic ID is required")
			return
		}
		if req.Resource.Title == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Title is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := resources.Add(ctx, req.TopicID, &req.Resource); err != nil {
			RespondWithStoreError(w, log, err, "Topic not found", "Failed to create resource")
			return
		}
		RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"success":  true,
			"resource": req.Resource,
		})
	}
}

func UpdateResource(resources store.ResourceStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       *string  `json:"title"`
			Description *string  `json:"description"`
			URL         *string  `json:"url"`
			Type        *string  `json:"type"`
			Status      *string  `json:"status"`
			Priority    *string  `json:"priority"`
			Tags        []string `json:"tags"`
			Notes       *string  `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid JSON in request body")
			return
		}

		patch := store.Patch{}
		setIfPresent(patch, "title", req.Title)
		setIfPresent(patch, "description", req.Description)
		setIfPresent(patch, "url", req.URL)
		setIfPresent(patch, "type", req.Type)
		setIfPresent(patch, "status", req.Status)
		setIfPresent(patch, "priority", req.Priority)
		setIfPresent(patch, "notes", req.Notes)
		if req.Tags != nil {
			patch["tags"] = req.Tags
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := resources.Update(ctx, mux.Vars(r)["id"], patch); err != nil {
			RespondWithStoreError(w, log, err, "Resource not found", "Failed to update resource")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func DeleteResource(resources store.ResourceStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := resources.Remove(ctx, mux.Vars(r)["id"]); err != nil {
			RespondWithStoreError(w, log, err, "Resource not found", "Failed to delete resource")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func setIfPresent(patch store.Patch, key string, value *string) {
	if value != nil {
		patch[key] = *value
	}
}
