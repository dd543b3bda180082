package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// ProfileHandler управляет бизнес-профилем пользователя
type ProfileHandler struct {
	profile *store.ProfileStore
	logger  *zap.Logger
}

func NewProfileHandler(profile *store.ProfileStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profile: profile,
		logger:  logger,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.profile.Get()); err != nil {
		h.logger.Error("failed to encode profile response", zap.Error(err))
	}
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.profile.Update(updates)
	if err != nil {
		h.logger.Error("failed to update profile", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}
