package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Refresher ставит пересчет показателей дашборда в очередь.
type Refresher interface {
	Refresh()
}

// InvoicesHandler управляет счетами покупателя
type InvoicesHandler struct {
	invoices  *store.InvoiceStore
	refresher Refresher
	logger    *zap.Logger
}

func NewInvoicesHandler(invoices *store.InvoiceStore, refresher Refresher, logger *zap.Logger) *InvoicesHandler {
	return &InvoicesHandler{
		invoices:  invoices,
		refresher: refresher,
		logger:    logger,
	}
}

func (h *InvoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.InvoiceFilter{
		Number:   r.URL.Query().Get("number"),
		DateFrom: r.URL.Query().Get("date_from"),
	}

	if raw := r.URL.Query().Get("min_amount"); raw != "" {
		minAmount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		filter.MinAmount = &minAmount
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.invoices.Filtered(filter)); err != nil {
		h.logger.Error("failed to encode invoices response", zap.Error(err))
	}
}

type validateRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

func (h *InvoicesHandler) Validate(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.invoices.Validate(invoiceID, req.Approved, req.Notes)
	if err != nil {
		h.logger.Error("failed to validate invoice", zap.Error(err), zap.String("invoice_id", invoiceID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if result.Success {
		h.refresher.Refresh()
	}

	writeResult(w, h.logger, result)
}

func (h *InvoicesHandler) DiscountOffers(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	offers, err := h.invoices.DiscountOffers(invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get discount offers", zap.Error(err), zap.String("invoice_id", invoiceID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(offers); err != nil {
		h.logger.Error("failed to encode offers response", zap.Error(err))
	}
}
