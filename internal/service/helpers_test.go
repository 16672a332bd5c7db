package service

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// memStore is an in-memory export.Store for tests. Absent names report
// fs.ErrNotExist like the real backends.
type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (m *memStore) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

func (m *memStore) putJSON(t *testing.T, name string, v any) *memStore {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	m.files[name] = data
	return m
}

func (m *memStore) putRaw(name string, data []byte) *memStore {
	m.files[name] = data
	return m
}

func testNavConfig() NavigationConfig {
	return NavigationConfig{
		SiteOrigin:  "https://www.guardianre.com",
		PrimarySlug: "primary-navigation",
		BrandToken:  "guardian",
		MainSlug:    "main-menu",
	}
}

// writeMDX drops an MDX fixture under dir/kind/slug.mdx.
func writeMDX(t *testing.T, dir, kind, slug, content string) {
	t.Helper()
	path := filepath.Join(dir, kind, slug+".mdx")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
