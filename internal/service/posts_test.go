package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

func testPostsDir(t *testing.T) string {
	dir := t.TempDir()

	writeMDX(t, dir, "posts", "market-update", `---
title: "Market Update"
permalink: "market-update"
date: "2023-09-14T08:30:00"
status: "publish"
excerpt: "Quarterly view."
categories:
  - "News"
  - "Claims and Recoveries"
tags:
  - "Reinsurance"
authorId: 3
readingTime: 4
---

Rates hardened again.
`)

	writeMDX(t, dir, "posts", "renewals-2024", `---
title: "2024 Renewals"
permalink: "renewals-2024"
date: "2024-01-02T09:00:00"
status: "publish"
categories:
  - "Insights"
tags:
  - "treaty"
---

Renewal commentary.
`)

	writeMDX(t, dir, "posts", "unfinished", `---
title: "Not Ready"
date: "2024-03-01"
status: "draft"
---

Still writing.
`)

	return dir
}

func TestPostsSortedNewestFirst(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	posts, err := svc.Posts()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "renewals-2024", posts[0].Slug)
	assert.Equal(t, "market-update", posts[1].Slug)

	// Listings carry metadata only.
	assert.Empty(t, posts[0].HTMLContent)
}

func TestPostsSkipsDrafts(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	posts, err := svc.Posts()
	require.NoError(t, err)
	for _, p := range posts {
		assert.NotEqual(t, "unfinished", p.Slug)
	}
}

func TestPostRendersBody(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	post, err := svc.Post("market-update")
	require.NoError(t, err)

	assert.Equal(t, "Market Update", post.Title)
	assert.Contains(t, post.HTMLContent, "Rates hardened again.")
	assert.Equal(t, 4, post.ReadingTime)
	assert.Equal(t, []string{"News", "Claims and Recoveries"}, post.Categories)
}

func TestPostEstimatesReadingTimeWhenAbsent(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	post, err := svc.Post("renewals-2024")
	require.NoError(t, err)
	assert.Equal(t, 1, post.ReadingTime)
}

func TestPostNotFound(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	_, err := svc.Post("never-written")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostDraftIsNotServed(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	_, err := svc.Post("unfinished")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostsByTagMatchesCaseInsensitive(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	posts, err := svc.PostsByTag("reinsurance")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "market-update", posts[0].Slug)
}

func TestPostsByCategory(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	posts, err := svc.PostsByCategory("Insights")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "renewals-2024", posts[0].Slug)

	none, err := svc.PostsByCategory("Careers")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostsByCategorySlug(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	// Term links address categories by slug while frontmatter stores names.
	posts, err := svc.PostsByCategory("claims-and-recoveries")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "market-update", posts[0].Slug)
}

func TestPostAuthorFromUsersDocument(t *testing.T) {
	store := newMemStore().putJSON(t, export.DocUsers, []model.Author{
		{ID: 3, Username: "jkalyondo", DisplayName: "J. Kalyondo"},
	})
	svc := NewPostService(testPostsDir(t), store)

	post, err := svc.Post("market-update")
	require.NoError(t, err)
	assert.Equal(t, "J. Kalyondo", post.Author)
}

func TestPostNoAuthorWhenUsersDocumentMissing(t *testing.T) {
	svc := NewPostService(testPostsDir(t), newMemStore())

	post, err := svc.Post("market-update")
	require.NoError(t, err)
	assert.Empty(t, post.Author)
}
