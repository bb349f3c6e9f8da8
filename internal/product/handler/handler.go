package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nmellal/gestock/internal/auth"
	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/internal/product"
	"github.com/nmellal/gestock/internal/product/dto"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type createProductRequest struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	CategoryID string `json:"category_id"`
	ImageURL   string `json:"image_url"`
	Quantity   int64  `json:"quantity"`
	Unit       string `json:"unit"`
}

type updateProductRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &dto.CreateProductInput{
		CommerceID: commerce.ID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
	})
	if err != nil {
		h.logger.Error("failed to create product", zap.String("commerce_id", commerce.ID), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "productID")

	p, err := h.uc.GetProduct(r.Context(), id, commerce.ID)
	if err != nil {
		h.logger.Error("failed to get product", zap.String("product_id", id), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}
	if p == nil {
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("product not found"))
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())

	products, err := h.uc.ListProducts(r.Context(), commerce.ID)
	if err != nil {
		h.logger.Error("failed to list products", zap.String("commerce_id", commerce.ID), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "productID")

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), &dto.UpdateProductInput{
		ID:         id,
		CommerceID: commerce.ID,
		Name:       req.Name,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, p)
}

// Delete removes the product row. The caller is responsible for deleting the
// product's image through the upload endpoint beforehand.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "productID")

	if err := h.uc.DeleteProduct(r.Context(), id, commerce.ID); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
