package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"go.uber.org/zap"
)

// writeResult отправляет структурированный результат операции.
// Бизнес-отказ не считается ошибкой HTTP: клиент читает флаг success
func writeResult(w http.ResponseWriter, logger *zap.Logger, result domain.Result) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("failed to encode result response", zap.Error(err))
	}
}
