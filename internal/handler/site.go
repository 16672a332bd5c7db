package handler

import (
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/service"
)

type SiteHandler struct {
	siteService *service.SiteService
}

func NewSiteHandler(siteService *service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteService: siteService,
	}
}

func (h *SiteHandler) Show(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.siteService.Site())
}
