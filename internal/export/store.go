package export

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/config"
)

// Document names inside the export set, relative to the content root.
const (
	DocMenus         = "_raw/menus.json"
	DocSite          = "_raw/site.json"
	DocTaxonomies    = "_raw/taxonomies.json"
	DocRedirects     = "_raw/redirects.json"
	DocUsers         = "_raw/users.json"
	DocMediaManifest = "media-manifest.json"
)

// Store reads documents from the one-time export set. Missing documents
// report an error satisfying errors.Is(err, fs.ErrNotExist) so callers can
// treat absence as a normal condition.
type Store interface {
	ReadFile(name string) ([]byte, error)
}

// New selects the store backend from config: object storage when a bucket
// is configured, the content directory on disk otherwise.
func New(cfg *config.Config) (Store, error) {
	if cfg.S3Bucket != "" {
		slog.Info("reading export documents from object storage",
			"bucket", cfg.S3Bucket,
			"region", cfg.S3Region,
			"endpoint", cfg.S3Endpoint,
		)
		return NewS3Store(S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Timeout:   cfg.S3Timeout,
		})
	}
	return NewDiskStore(cfg.ContentPath), nil
}

// DiskStore reads export documents from a directory tree.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) ReadFile(name string) ([]byte, error) {
	name = filepath.Clean(filepath.FromSlash(name))
	if name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("document %q: %w", name, fs.ErrNotExist)
	}
	return os.ReadFile(filepath.Join(s.root, name))
}
