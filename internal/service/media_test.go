package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

func testManifest(t *testing.T) *memStore {
	return newMemStore().putJSON(t, export.DocMediaManifest, []model.MediaItem{
		{ID: 101, URL: "https://guardianre.com/wp-content/uploads/2021/06/team.jpg", File: "2021/06/team.jpg", MimeType: "image/jpeg", Title: "Our Team"},
		{ID: 102, URL: "https://cdn.example.com/logo.png", MimeType: "image/png", Title: "Logo"},
	})
}

func TestManifest(t *testing.T) {
	svc := NewMediaService(testManifest(t))

	items, err := svc.Manifest()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2021/06/team.jpg", items[0].File)
}

func TestMediaByID(t *testing.T) {
	svc := NewMediaService(testManifest(t))

	item, err := svc.ByID(102)
	require.NoError(t, err)
	assert.Equal(t, "Logo", item.Title)

	_, err = svc.ByID(999)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestLocalPath(t *testing.T) {
	// Exported uploads keep their WordPress directory structure.
	assert.Equal(t, "2021/06/team.jpg", LocalPath(model.MediaItem{
		URL:  "https://guardianre.com/wp-content/uploads/2021/06/team.jpg",
		File: "2021/06/team.jpg",
	}))

	// Without a recorded file path the URL's base name is used.
	assert.Equal(t, "logo.png", LocalPath(model.MediaItem{
		URL: "https://cdn.example.com/assets/logo.png",
	}))

	// Nothing usable.
	assert.Equal(t, "", LocalPath(model.MediaItem{URL: "https://cdn.example.com/"}))
	assert.Equal(t, "", LocalPath(model.MediaItem{}))
}
