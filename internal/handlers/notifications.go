package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/avc/quickflip-dashboard/internal/utils/timeutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotificationsHandler управляет уведомлениями пользователя
type NotificationsHandler struct {
	notifications *store.NotificationStore
	logger        *zap.Logger
}

func NewNotificationsHandler(notifications *store.NotificationStore, logger *zap.Logger) *NotificationsHandler {
	return &NotificationsHandler{
		notifications: notifications,
		logger:        logger,
	}
}

type notificationResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Read    bool   `json:"read"`
	Time    string `json:"time"`
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.notifications.List()

	response := make([]notificationResponse, 0, len(list))
	for _, n := range list {
		response = append(response, notificationResponse{
			ID:      n.ID,
			Title:   n.Title,
			Message: n.Message,
			Kind:    n.Kind,
			Read:    n.Read,
			Time:    timeutil.Relative(n.CreatedAt),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode notifications response", zap.Error(err))
	}
}

type unreadCountResponse struct {
	Unread int `json:"unread"`
}

func (h *NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(unreadCountResponse{Unread: h.notifications.UnreadCount()}); err != nil {
		h.logger.Error("failed to encode unread count response", zap.Error(err))
	}
}

func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationID")

	result, err := h.notifications.MarkRead(notificationID)
	if err != nil {
		h.logger.Error("failed to mark notification read", zap.Error(err), zap.String("notification_id", notificationID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.notifications.MarkAllRead()
	if err != nil {
		h.logger.Error("failed to mark all notifications read", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}
