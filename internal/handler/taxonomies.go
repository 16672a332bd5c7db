package handler

import (
	"errors"
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/service"
)

type TaxonomiesHandler struct {
	taxonomyService *service.TaxonomyService
}

func NewTaxonomiesHandler(taxonomyService *service.TaxonomyService) *TaxonomiesHandler {
	return &TaxonomiesHandler{
		taxonomyService: taxonomyService,
	}
}

func (h *TaxonomiesHandler) Terms(w http.ResponseWriter, r *http.Request) {
	taxonomy := r.PathValue("taxonomy")
	if taxonomy == "" {
		respondError(w, http.StatusNotFound, "taxonomy not found")
		return
	}

	terms, err := h.taxonomyService.Terms(taxonomy)
	if err != nil {
		if errors.Is(err, service.ErrTaxonomyNotFound) {
			respondError(w, http.StatusNotFound, "taxonomy not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load taxonomy")
		return
	}
	respondJSON(w, http.StatusOK, terms)
}
