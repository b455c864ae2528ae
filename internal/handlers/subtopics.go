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

func CreateSubtopic(subtopics store.SubtopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TopicID     string        `json:"topicId"`
			Title       string        `json:"title"`
			Description string        `json:"description"`
			Notes       string        `json:"notes"`
			Links       []models.Link `json:"links"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.TopicID == "" || req.Title == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Topic ID and title are required")
			return
		}

		subtopic := models.Subtopic{
			Title:       req.Title,
			Description: req.Description,
			TopicID:     req.TopicID,
			Notes:       req.Notes,
			Links:       req.Links,
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := subtopics.Create(ctx, &subtopic); err != nil {
			RespondWithStoreError(w, log, err, "Topic not found", "Failed to create subtopic")
			return
		}
		RespondWithJSON(w, http.StatusCreated, subtopic)
	}
}

func ListSubtopics(subtopics store.SubtopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID := r.URL.Query().Get("topicId")
		if topicID == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Topic ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		list, err := subtopics.ListByTopic(ctx, topicID)
		if err != nil {
			log.Error("failed to fetch subtopics", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch subtopics")
			return
		}
		RespondWithJSON(w, http.StatusOK, list)
	}
}

func GetSubtopic(subtopics store.SubtopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		subtopic, err := subtopics.Get(ctx, mux.Vars(r)["id"])
		if err != nil {
			RespondWithStoreError(w, log, err, "Subtopic not found", "Failed to fetch subtopic")
			return
		}
		RespondWithJSON(w, http.StatusOK, subtopic)
	}
}

func UpdateSubtopic(subtopics store.SubtopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       *string       `json:"title"`
			Description *string       `json:"description"`
			Notes       *string       `json:"notes"`
			Links       []models.Link `json:"links"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}

		patch := store.Patch{}
		setIfPresent(patch, "title", req.Title)
		setIfPresent(patch, "description", req.Description)
		setIfPresent(patch, "notes", req.Notes)
		if req.Links != nil {
			patch["links"] = req.Links
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if _, err := subtopics.Update(ctx, mux.Vars(r)["id"], patch); err != nil {
			RespondWithStoreError(w, log, err, "Subtopic not found", "Failed to update subtopic")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func DeleteSubtopic(subtopics store.SubtopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := subtopics.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			RespondWithStoreError(w, log, err, "Subtopic not found", "Failed to delete subtopic")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
