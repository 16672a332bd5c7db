package handler

import (
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/service"
)

type NavigationHandler struct {
	navService *service.NavigationService
}

func NewNavigationHandler(navService *service.NavigationService) *NavigationHandler {
	return &NavigationHandler{
		navService: navService,
	}
}

// Tree serves the resolved navigation tree. The service always produces a
// usable tree, so this endpoint has no failure path.
func (h *NavigationHandler) Tree(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.navService.Navigation())
}

// Menus serves the raw menu documents for collaborators that need menu
// metadata rather than a rendered tree.
func (h *NavigationHandler) Menus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.navService.Menus())
}
