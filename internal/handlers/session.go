package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// SessionHandler отдает состояние сессии и настройки интерфейса
type SessionHandler struct {
	session *store.SessionStore
	ui      *store.UIStore
	logger  *zap.Logger
}

func NewSessionHandler(session *store.SessionStore, ui *store.UIStore, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		ui:      ui,
		logger:  logger,
	}
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := h.session.Current()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session); err != nil {
		h.logger.Error("failed to encode session response", zap.Error(err))
	}
}

type darkModeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

func (h *SessionHandler) DarkMode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(darkModeResponse{DarkMode: h.ui.DarkMode()}); err != nil {
		h.logger.Error("failed to encode dark mode response", zap.Error(err))
	}
}

func (h *SessionHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	darkMode, err := h.ui.ToggleDarkMode()
	if err != nil {
		h.logger.Error("failed to toggle dark mode", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(darkModeResponse{DarkMode: darkMode}); err != nil {
		h.logger.Error("failed to encode dark mode response", zap.Error(err))
	}
}
