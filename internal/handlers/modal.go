package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"go.uber.org/zap"
)

// ModalHandler отдает видимое модальное окно и принимает ответ пользователя
type ModalHandler struct {
	coordinator domain.Coordinator
	logger      *zap.Logger
}

func NewModalHandler(coordinator domain.Coordinator, logger *zap.Logger) *ModalHandler {
	return &ModalHandler{
		coordinator: coordinator,
		logger:      logger,
	}
}

func (h *ModalHandler) Current(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.coordinator.Current()); err != nil {
		h.logger.Error("failed to encode modal response", zap.Error(err))
	}
}

type resolveRequest struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

func (h *ModalHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.coordinator.Resolve(req.ID, req.Confirmed); err != nil {
		if errors.Is(err, domain.ErrModalNotPending) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to resolve modal", zap.Error(err), zap.String("modal_id", req.ID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
