package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nmellal/gestock/internal/auth"
	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/internal/stock"
	"github.com/nmellal/gestock/internal/stock/dto"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		logger: log,
	}
}

type replenishRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *StockHandler) Replenish(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	productID := chi.URLParam(r, "productID")

	var req replenishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	movement, err := h.uc.Replenish(r.Context(), &dto.ReplenishInput{
		CommerceID: commerce.ID,
		ProductID:  productID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.logger.Error("failed to replenish stock",
			zap.String("commerce_id", commerce.ID),
			zap.String("product_id", productID),
			zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, movement)
}

func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	productID := r.URL.Query().Get("product_id")

	movements, err := h.uc.ListMovements(r.Context(), commerce.ID, productID)
	if err != nil {
		h.logger.Error("failed to list stock movements", zap.String("commerce_id", commerce.ID), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, map[string]any{"movements": movements})
}
