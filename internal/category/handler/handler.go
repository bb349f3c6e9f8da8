package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nmellal/gestock/internal/auth"
	"github.com/nmellal/gestock/internal/category"
	"github.com/nmellal/gestock/internal/category/dto"
	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	cat, err := h.uc.CreateCategory(r.Context(), &dto.CreateCategoryInput{
		CommerceID:  commerce.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("failed to create category", zap.String("commerce_id", commerce.ID), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusCreated, cat)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "categoryID")

	cat, err := h.uc.GetCategory(r.Context(), id, commerce.ID)
	if err != nil {
		h.logger.Error("failed to get category", zap.String("category_id", id), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}
	if cat == nil {
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("category not found"))
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())

	cats, err := h.uc.ListCategories(r.Context(), commerce.ID)
	if err != nil {
		h.logger.Error("failed to list categories", zap.String("commerce_id", commerce.ID), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "categoryID")

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	cat, err := h.uc.UpdateCategory(r.Context(), &dto.UpdateCategoryInput{
		ID:          id,
		CommerceID:  commerce.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("failed to update category", zap.String("category_id", id), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commerce := auth.CommerceFrom(r.Context())
	id := chi.URLParam(r, "categoryID")

	if err := h.uc.DeleteCategory(r.Context(), id, commerce.ID); err != nil {
		h.logger.Error("failed to delete category", zap.String("category_id", id), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
