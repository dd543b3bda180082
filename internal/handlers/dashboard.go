package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// DashboardHandler отдает показатели, график платежей и ленту действий
type DashboardHandler struct {
	dashboard *store.DashboardStore
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *store.DashboardStore, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.dashboard.Stats()); err != nil {
		h.logger.Error("failed to encode stats response", zap.Error(err))
	}
}

func (h *DashboardHandler) Chart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.dashboard.ChartData()); err != nil {
		h.logger.Error("failed to encode chart response", zap.Error(err))
	}
}

func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	activity := h.dashboard.RecentActivity()
	if len(activity) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(activity); err != nil {
		h.logger.Error("failed to encode activity response", zap.Error(err))
	}
}
