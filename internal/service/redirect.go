package service

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

// RedirectService maps legacy WordPress permalinks to their new paths.
// The document is produced once by the export, so it is loaded at startup
// rather than per request; a missing document simply means no legacy
// redirects are served.
type RedirectService struct {
	store  export.Store
	byPath map[string]model.Redirect
	list   []model.Redirect
}

func NewRedirectService(store export.Store) *RedirectService {
	s := &RedirectService{
		store:  store,
		byPath: map[string]model.Redirect{},
		list:   []model.Redirect{},
	}
	s.load()
	return s
}

func (s *RedirectService) load() {
	data, err := s.store.ReadFile(export.DocRedirects)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("redirect document missing, no legacy redirects served", "doc", export.DocRedirects)
		} else {
			slog.Error("redirect document unreadable, no legacy redirects served", "doc", export.DocRedirects, "error", err)
		}
		return
	}

	var redirects []model.Redirect
	if err := json.Unmarshal(data, &redirects); err != nil {
		slog.Error("redirect document malformed, no legacy redirects served", "doc", export.DocRedirects, "error", err)
		return
	}

	for _, r := range redirects {
		if r.From == "" || r.To == "" {
			continue
		}
		s.byPath[normalizeRedirectPath(r.From)] = r
	}
	s.list = redirects
	slog.Info("legacy redirects loaded", "count", len(s.byPath))
}

// Lookup matches a request path against the redirect table, trailing
// slash insensitive.
func (s *RedirectService) Lookup(path string) (model.Redirect, bool) {
	r, ok := s.byPath[normalizeRedirectPath(path)]
	return r, ok
}

// Redirects returns the loaded table, empty when the document was absent.
func (s *RedirectService) Redirects() []model.Redirect {
	return s.list
}

func normalizeRedirectPath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
