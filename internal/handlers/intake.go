package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"go.uber.org/zap"
)

// IntakeService определяет отправку анкеты покупателя.
type IntakeService interface {
	Submit(ctx context.Context, fields map[string]string) (domain.Result, error)
}

// SellerService определяет регистрацию продавца.
type SellerService interface {
	Register(ctx context.Context, form domain.SellerForm) (domain.Result, error)
}

// IntakeHandler принимает анкету покупателя и регистрацию продавца
type IntakeHandler struct {
	intakeService IntakeService
	sellerService SellerService
	logger        *zap.Logger
}

func NewIntakeHandler(intakeService IntakeService, sellerService SellerService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
		sellerService: sellerService,
		logger:        logger,
	}
}

func (h *IntakeHandler) SubmitIntake(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.intakeService.Submit(r.Context(), fields)
	if err != nil {
		h.logger.Error("failed to submit intake", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}

func (h *IntakeHandler) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	var form domain.SellerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.sellerService.Register(r.Context(), form)
	if err != nil {
		h.logger.Error("failed to register seller", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeResult(w, h.logger, result)
}
