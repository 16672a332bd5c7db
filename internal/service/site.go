package service

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

// SiteService serves the exported site settings. Like navigation it
// degrades instead of failing: a missing or broken document yields the
// configured fallback values.
type SiteService struct {
	store    export.Store
	fallback model.Site
}

func NewSiteService(store export.Store, fallback model.Site) *SiteService {
	return &SiteService{
		store:    store,
		fallback: fallback,
	}
}

func (s *SiteService) Site() model.Site {
	data, err := s.store.ReadFile(export.DocSite)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("site document missing, using defaults", "doc", export.DocSite)
		} else {
			slog.Error("site document unreadable, using defaults", "doc", export.DocSite, "error", err)
		}
		return s.fallback
	}

	var site model.Site
	if err := json.Unmarshal(data, &site); err != nil {
		slog.Error("site document malformed, using defaults", "doc", export.DocSite, "error", err)
		return s.fallback
	}

	if site.Name == "" {
		site.Name = s.fallback.Name
	}
	if site.BaseURL == "" {
		site.BaseURL = s.fallback.BaseURL
	}
	if site.PostsPerPage <= 0 {
		site.PostsPerPage = s.fallback.PostsPerPage
	}
	return site
}
