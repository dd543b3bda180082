package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// WalletHandler управляет кошельком пользователя
type WalletHandler struct {
	wallet *store.WalletStore
	logger *zap.Logger
}

func NewWalletHandler(wallet *store.WalletStore, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		wallet: wallet,
		logger: logger,
	}
}

type balanceResponse struct {
	Balance      float64 `json:"balance"`
	KYCCompleted bool    `json:"kyc_completed"`
}

func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	response := balanceResponse{
		Balance:      h.wallet.Balance(),
		KYCCompleted: h.wallet.KYCCompleted(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode balance response", zap.Error(err))
	}
}

func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.wallet.Transactions()
	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		h.logger.Error("failed to encode transactions response", zap.Error(err))
	}
}

type walletRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.wallet.AddMoney(req.Amount, req.Method)
	if err != nil {
		h.logger.Error("failed to add money", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.wallet.Withdraw(req.Amount, req.Method)
	if err != nil {
		h.logger.Error("failed to withdraw", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *WalletHandler) CompleteKYC(w http.ResponseWriter, r *http.Request) {
	result, err := h.wallet.CompleteKYC()
	if err != nil {
		h.logger.Error("failed to complete KYC", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}
