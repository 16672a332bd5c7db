package handler

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/model"
	"github.com/kalyondo/guardianre-website/internal/service"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

func (h *MediaHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	items, err := h.mediaService.Manifest()
	if err != nil {
		// An export without media has no manifest, that is not a failure.
		if errors.Is(err, fs.ErrNotExist) {
			respondJSON(w, http.StatusOK, []model.MediaItem{})
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load media manifest")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
