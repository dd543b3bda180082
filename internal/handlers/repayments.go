package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RepaymentsHandler управляет выплатами по профинансированным счетам
type RepaymentsHandler struct {
	repayments *store.RepaymentStore
	dashboard  *store.DashboardStore
	refresher  Refresher
	logger     *zap.Logger
}

func NewRepaymentsHandler(
	repayments *store.RepaymentStore,
	dashboard *store.DashboardStore,
	refresher Refresher,
	logger *zap.Logger,
) *RepaymentsHandler {
	return &RepaymentsHandler{
		repayments: repayments,
		dashboard:  dashboard,
		refresher:  refresher,
		logger:     logger,
	}
}

func (h *RepaymentsHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.repayments.List()); err != nil {
		h.logger.Error("failed to encode repayments response", zap.Error(err))
	}
}

func (h *RepaymentsHandler) Pending(w http.ResponseWriter, r *http.Request) {
	pending := h.repayments.Pending()
	if len(pending) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pending); err != nil {
		h.logger.Error("failed to encode pending repayments response", zap.Error(err))
	}
}

func (h *RepaymentsHandler) Pay(w http.ResponseWriter, r *http.Request) {
	repaymentID := chi.URLParam(r, "repaymentID")

	result, err := h.repayments.MarkPaid(repaymentID)
	if err != nil {
		h.logger.Error("failed to pay repayment", zap.Error(err), zap.String("repayment_id", repaymentID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if result.Success {
		if _, err := h.dashboard.AddActivity("payment", result.Message); err != nil {
			h.logger.Warn("failed to record payment activity", zap.Error(err))
		}
		h.refresher.Refresh()
	}

	writeResult(w, h.logger, result)
}
