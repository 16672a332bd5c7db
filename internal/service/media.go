package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

var ErrMediaNotFound = errors.New("media item not found")

// MediaService reads the media manifest generated by the export transform.
type MediaService struct {
	store export.Store
}

func NewMediaService(store export.Store) *MediaService {
	return &MediaService{store: store}
}

func (s *MediaService) Manifest() ([]model.MediaItem, error) {
	data, err := s.store.ReadFile(export.DocMediaManifest)
	if err != nil {
		return nil, err
	}

	var items []model.MediaItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", export.DocMediaManifest, err)
	}
	return items, nil
}

func (s *MediaService) ByID(id int) (*model.MediaItem, error) {
	items, err := s.Manifest()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrMediaNotFound
}

// LocalPath returns where a manifest item lives under the uploads mirror:
// the WordPress uploads-relative file path when the export recorded one,
// otherwise the URL's base name. Empty when neither is usable.
func LocalPath(item model.MediaItem) string {
	if item.File != "" {
		return item.File
	}
	u, err := url.Parse(item.URL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
