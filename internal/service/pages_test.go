package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalyondo/guardianre-website/internal/model"
)

func testPagesDir(t *testing.T) string {
	dir := t.TempDir()

	writeMDX(t, dir, "pages", "home", `---
title: "Home"
permalink: "home"
type: "page"
status: "publish"
menuOrder: 1
path: "home"
---

Welcome.
`)

	writeMDX(t, dir, "pages", "about-us", `---
title: "About Us"
permalink: "about-us"
type: "page"
status: "publish"
menuOrder: 2
path: "about-us"
---

Who we are.
`)

	writeMDX(t, dir, "pages", "our-team", `---
title: "Our Team"
permalink: "our-team"
type: "page"
status: "publish"
menuOrder: 1
parentId: 12
path: "about-us/our-team"
---

Board and management.
`)

	writeMDX(t, dir, "pages", "history", `---
title: "History"
permalink: "history"
type: "page"
status: "publish"
menuOrder: 3
parentId: 99
path: "legacy/history"
---

Where we came from.
`)

	return dir
}

func TestPagesFlatListSorted(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	pages, err := svc.Pages()
	require.NoError(t, err)
	require.Len(t, pages, 4)

	// Menu order first, title breaks ties.
	assert.Equal(t, "home", pages[0].Slug)
	assert.Equal(t, "our-team", pages[1].Slug)
	assert.Equal(t, "about-us", pages[2].Slug)
	assert.Equal(t, "history", pages[3].Slug)
}

func TestPageTreeNestsByPath(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	roots, err := svc.Tree()
	require.NoError(t, err)

	rootSlugs := make([]string, 0, len(roots))
	var about *model.Page
	for _, root := range roots {
		rootSlugs = append(rootSlugs, root.Slug)
		if root.Slug == "about-us" {
			about = root
		}
	}
	assert.Contains(t, rootSlugs, "home")
	assert.Contains(t, rootSlugs, "about-us")
	assert.NotContains(t, rootSlugs, "our-team")

	require.NotNil(t, about)
	require.Len(t, about.Children, 1)
	assert.Equal(t, "our-team", about.Children[0].Slug)
	assert.Same(t, about, about.Children[0].Parent)
}

func TestPageTreeRootsDanglingParents(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	roots, err := svc.Tree()
	require.NoError(t, err)

	// "legacy" was never exported, so its child surfaces as a root
	// instead of vanishing.
	var found bool
	for _, root := range roots {
		if root.Slug == "history" {
			found = true
			assert.Empty(t, root.Children)
			assert.Nil(t, root.Parent)
		}
	}
	assert.True(t, found)
}

func TestPageByPath(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	page, err := svc.Page("about-us/our-team")
	require.NoError(t, err)
	assert.Equal(t, "Our Team", page.Title)
	assert.Contains(t, page.HTMLContent, "Board and management.")
}

func TestPageByPathTrimsSlashes(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	page, err := svc.Page("/about-us/")
	require.NoError(t, err)
	assert.Equal(t, "About Us", page.Title)
}

func TestPageWrongPathIsNotFound(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	// The file exists under its slug, but not at this location.
	_, err := svc.Page("services/our-team")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageNotFound(t *testing.T) {
	svc := NewPageService(testPagesDir(t))

	_, err := svc.Page("no-such-page")
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = svc.Page("/")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageTitleFallsBackToSlug(t *testing.T) {
	dir := t.TempDir()
	writeMDX(t, dir, "pages", "claims-handling", `---
permalink: "claims-handling"
status: "publish"
path: "claims-handling"
---

Claims process.
`)
	svc := NewPageService(dir)

	page, err := svc.Page("claims-handling")
	require.NoError(t, err)
	assert.Equal(t, "Claims Handling", page.Title)
}
