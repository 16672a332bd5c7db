package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalyondo/guardianre-website/internal/service"
)

func postsMux(t *testing.T) *http.ServeMux {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "market-update.mdx"), []byte(`---
title: "Market Update"
permalink: "market-update"
date: "2023-09-14T08:30:00"
status: "publish"
---

Rates hardened again.
`), 0o644))

	h := NewPostsHandler(service.NewPostService(dir, docStore{}))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts", h.List)
	mux.HandleFunc("GET /api/posts/{slug}", h.Show)
	mux.HandleFunc("GET /api/posts/tag/{tag}", h.ListByTag)
	return mux
}

func TestPostsListEndpoint(t *testing.T) {
	mux := postsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "market-update")
}

func TestPostShowEndpoint(t *testing.T) {
	mux := postsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/market-update", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rates hardened again.")
}

func TestPostShowNotFound(t *testing.T) {
	mux := postsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"post not found"}`, rec.Body.String())
}

func TestPostsByTagEndpointEmpty(t *testing.T) {
	mux := postsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/tag/none", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
