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

// GetProgress returns today's snapshot, creating a zeroed one on first read.
func GetProgress(progress store.ProgressStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		snapshot, err := progress.GetOrCreate(ctx, models.CurrentProgressKey(time.Now()))
		if err != nil {
			log.Error("failed to fetch progress", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to fetch progress")
			return
		}
		RespondWithJSON(w, http.StatusOK, snapshot)
	}
}

// UpsertProgress writes the snapshot for the key tuple in the body, creating
// it if absent. Serves both POST and PUT.
func UpsertProgress(progress store.ProgressStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.Progress
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, log, http.StatusBadRequest, "Invalid input")
			return
		}
		if req.Year == 0 || req.Month == 0 || req.Day == 0 {
			RespondWithError(w, log, http.StatusBadRequest, "Year, month, week and day are required")
			return
		}

		patch := store.Patch{
			"yearProgress":  req.YearProgress,
			"monthProgress": req.MonthProgress,
			"weekProgress":  req.WeekProgress,
			"dayProgress":   req.DayProgress,
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := progress.Upsert(ctx, req.Key(), patch); err != nil {
			log.Error("failed to update progress", zap.Error(err))
			RespondWithError(w, log, http.StatusInternalServerError, "Failed to update progress")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
