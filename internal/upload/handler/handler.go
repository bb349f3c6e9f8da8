package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/internal/upload"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

// 8 MiB, matches what the product image form accepts.
const maxUploadSize = 8 << 20

type UploadHandler struct {
	storage *upload.DiskStorage
	logger  logger.ZapLogger
}

func NewUploadHandler(storage *upload.DiskStorage, log logger.ZapLogger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  log,
	}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
}

// Upload accepts a multipart "file" and responds with its public path.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("missing file"))
		return
	}
	defer file.Close()

	path, err := h.storage.Save(header.Filename, file)
	if err != nil {
		h.logger.Error("failed to save upload", zap.String("filename", header.Filename), zap.Error(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, uploadResponse{Success: true, Path: path})
}

type deleteRequest struct {
	Path string `json:"path"`
}

// Delete removes a previously uploaded file by its public path.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}
	if req.Path == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("missing path"))
		return
	}

	if err := h.storage.Delete(req.Path); err != nil {
		h.logger.Error("failed to delete upload", zap.String("path", req.Path), zap.Error(err))
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("invalid path"))
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, uploadResponse{Success: true})
}
