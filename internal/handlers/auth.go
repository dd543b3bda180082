package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"go.uber.org/zap"
)

// AuthService определяет операции входа и выхода.
type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.Result, error)
	Logout(ctx context.Context) (domain.Result, error)
}

// SessionReader отдает текущее состояние сессии.
type SessionReader interface {
	Current() domain.Session
}

type AuthHandler struct {
	authService AuthService
	session     SessionReader
	logger      *zap.Logger
}

func NewAuthHandler(authService AuthService, session SessionReader, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		session:     session,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to login", zap.Error(err), zap.String("username", req.Username))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Success {
		w.Header().Set("Authorization", "Bearer "+h.session.Current().APIToken)
	} else {
		w.WriteHeader(http.StatusUnauthorized)
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode login response", zap.Error(err))
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.Logout(r.Context())
	if err != nil {
		h.logger.Error("failed to logout", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode logout response", zap.Error(err))
	}
}
