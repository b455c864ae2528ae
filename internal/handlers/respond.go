// Package handlers contains the HTTP route surface: request parsing, status
// mapping and JSON shaping around the store layer.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("failed to marshal JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(dat)
}

func RespondWithError(w http.ResponseWriter, log *zap.Logger, code int, msg string) {
	if code > 499 {
		log.Error("server error", zap.Int("status", code), zap.String("message", msg))
	}
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// RespondWithStoreError maps store sentinels onto the route status contract:
// malformed id 400, missing entity 404, anything else 500.
func RespondWithStoreError(w http.ResponseWriter, log *zap.Logger, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, errs.ErrInvalidID):
		RespondWithError(w, log, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, errs.ErrNotFound):
		RespondWithError(w, log, http.StatusNotFound, notFoundMsg)
	default:
		log.Error(failMsg, zap.Error(err))
		RespondWithError(w, log, http.StatusInternalServerError, failMsg)
	}
}
