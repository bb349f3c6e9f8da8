package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nmellal/gestock/internal/auth"
	"github.com/nmellal/gestock/internal/commerce"
	"github.com/nmellal/gestock/internal/commerce/dto"
	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type CommerceHandler struct {
	uc     commerce.UseCase
	logger logger.ZapLogger
}

func NewCommerceHandler(uc commerce.UseCase, log logger.ZapLogger) *CommerceHandler {
	return &CommerceHandler{
		uc:     uc,
		logger: log,
	}
}

type syncRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Sync is the first-login hook: it provisions a commerce for the
// authenticated user if none exists yet. Repeated calls are no-ops.
func (h *CommerceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	c, err := h.uc.Ensure(r.Context(), &dto.EnsureCommerceInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		h.logger.Error("failed to ensure commerce", zap.String("email", req.Email), zap.Error(err))
		httperrors.WriteError(w, err)
		return
	}
	if c == nil {
		// Nothing to provision (empty email or missing display name).
		httperrors.WriteJSON(w, http.StatusOK, map[string]any{"synced": false})
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, map[string]any{"synced": true, "commerce": c})
}

// Me returns the tenant resolved by the auth middleware.
func (h *CommerceHandler) Me(w http.ResponseWriter, r *http.Request) {
	c := auth.CommerceFrom(r.Context())
	if c == nil {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, c)
}
