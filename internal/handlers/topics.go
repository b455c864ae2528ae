package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

const requestTimeout = 5 * time.Second

func ListTopics(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		list, err := topics.List(ctx)
		if err != nil {
			log.Error("failed to fetch topics", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch topics")
			return
		}
		RespondWithJSON(w, http.StatusOK, list)
	}
}

func CreateTopic(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var topic models.Topic
		if err := json.NewDecoder(r.Body).Decode(&topic); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if topic.Title == "" {
			RespondWithError(w, log, http.StatusBadRequest, "Title is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := topics.Create(ctx, &topic); err != nil {
			log.Error("failed to create topic", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to create topic")
			return
		}
		RespondWithJSON(w, http.StatusCreated, topic)
	}
}

func GetTopic(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		topic, err := topics.Get(ctx, mux.Vars(r)["id"])
		if err != nil {
			RespondWithStoreError(w, log, err, "Topic not found", "Failed to fetch topic")
			return
		}
		RespondWithJSON(w, http.StatusOK, topic)
	}
}

func UpdateTopic(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch store.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := topics.Update(ctx, mux.Vars(r)["id"], patch); err != nil {
			RespondWithStoreError(w, log, err, "Topic not found", "Failed to update topic")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func DeleteTopic(topics store.TopicStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := topics.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			RespondWithStoreError(w, log, err, "Topic not found", "Failed to delete topic")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
