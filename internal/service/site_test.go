package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

func testSiteFallback() model.Site {
	return model.Site{
		Name:         "Guardian Re",
		BaseURL:      "https://www.guardianre.com",
		PostsPerPage: 10,
	}
}

func TestSiteReturnsExportedSettings(t *testing.T) {
	store := newMemStore().putJSON(t, export.DocSite, model.Site{
		Name:         "Guardian Reinsurance Brokers",
		Description:  "Independent reinsurance broking",
		BaseURL:      "https://www.guardianre.com",
		Timezone:     "Africa/Nairobi",
		PostsPerPage: 12,
	})
	svc := NewSiteService(store, testSiteFallback())

	site := svc.Site()

	assert.Equal(t, "Guardian Reinsurance Brokers", site.Name)
	assert.Equal(t, "Africa/Nairobi", site.Timezone)
	assert.Equal(t, 12, site.PostsPerPage)
}

func TestSiteFillsGapsFromFallback(t *testing.T) {
	store := newMemStore().putJSON(t, export.DocSite, model.Site{
		Description: "only a description",
	})
	svc := NewSiteService(store, testSiteFallback())

	site := svc.Site()

	assert.Equal(t, "Guardian Re", site.Name)
	assert.Equal(t, "https://www.guardianre.com", site.BaseURL)
	assert.Equal(t, 10, site.PostsPerPage)
	assert.Equal(t, "only a description", site.Description)
}

func TestSiteFallbackWhenDocumentMissing(t *testing.T) {
	svc := NewSiteService(newMemStore(), testSiteFallback())

	assert.Equal(t, testSiteFallback(), svc.Site())
}

func TestSiteFallbackWhenDocumentMalformed(t *testing.T) {
	store := newMemStore().putRaw(export.DocSite, []byte("{nope"))
	svc := NewSiteService(store, testSiteFallback())

	assert.Equal(t, testSiteFallback(), svc.Site())
}
