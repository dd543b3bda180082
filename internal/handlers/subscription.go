package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// SubscriptionHandler управляет тарифными планами подписки
type SubscriptionHandler struct {
	subscription *store.SubscriptionStore
	dashboard    *store.DashboardStore
	logger       *zap.Logger
}

func NewSubscriptionHandler(subscription *store.SubscriptionStore, dashboard *store.DashboardStore, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscription: subscription,
		dashboard:    dashboard,
		logger:       logger,
	}
}

func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.subscription.Plans()); err != nil {
		h.logger.Error("failed to encode plans response", zap.Error(err))
	}
}

func (h *SubscriptionHandler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	plan := h.subscription.CurrentPlan()
	if plan == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		h.logger.Error("failed to encode current plan response", zap.Error(err))
	}
}

type planRequest struct {
	PlanID int64 `json:"plan_id"`
}

func (h *SubscriptionHandler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.subscription.SelectPlan(req.PlanID)
	if err != nil {
		h.logger.Error("failed to select plan", zap.Error(err), zap.Int64("plan_id", req.PlanID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscription.Subscribe()
	if err != nil {
		h.logger.Error("failed to subscribe", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if result.Success {
		if _, err := h.dashboard.AddActivity("subscription", result.Message); err != nil {
			h.logger.Warn("failed to record subscription activity", zap.Error(err))
		}
	}

	writeResult(w, h.logger, result)
}

func (h *SubscriptionHandler) UpgradePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.subscription.UpgradePlan(req.PlanID)
	if err != nil {
		h.logger.Error("failed to upgrade plan", zap.Error(err), zap.Int64("plan_id", req.PlanID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *SubscriptionHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscription.CancelSubscription()
	if err != nil {
		h.logger.Error("failed to cancel subscription", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}
