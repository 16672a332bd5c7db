package handler

import (
	"errors"
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/service"
)

type PagesHandler struct {
	pageService *service.PageService
}

func NewPagesHandler(pageService *service.PageService) *PagesHandler {
	return &PagesHandler{
		pageService: pageService,
	}
}

// Tree serves the full page hierarchy without rendered bodies.
func (h *PagesHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.pageService.Tree()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load pages")
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

// Show serves a single page addressed by its full path, nested pages
// included ("about-us/our-team").
func (h *PagesHandler) Show(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")
	if path == "" {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	page, err := h.pageService.Page(path)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(w, http.StatusNotFound, "page not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}
