package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/quickflip-dashboard/internal/storage"
	"go.uber.org/zap"
)

const healthProbeKey = "quickflip_health_probe"

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	bridge storage.Bridge
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(bridge storage.Bridge, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		bridge: bridge,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Storage: "ok",
	}

	// Проверяем хранилище пробной записью
	probe := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := h.bridge.Write(healthProbeKey, []byte(probe)); err != nil {
		response.Status = "degraded"
		response.Storage = "unavailable"
		h.logger.Warn("health check: storage unavailable", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	if response.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	probe := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := h.bridge.Write(healthProbeKey, []byte(probe)); err != nil {
		h.logger.Warn("readiness check failed: storage unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
