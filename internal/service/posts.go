package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/mdx"
	"github.com/kalyondo/guardianre-website/internal/model"
	slugutil "github.com/kalyondo/guardianre-website/internal/slug"
)

var ErrPostNotFound = errors.New("post not found")

// PostService reads the transformed blog posts (content/posts/*.mdx).
// Author display names come from the exported users document.
type PostService struct {
	parser      *mdx.Parser
	contentPath string
	store       export.Store
}

func NewPostService(contentPath string, store export.Store) *PostService {
	return &PostService{
		parser:      mdx.NewParser(),
		contentPath: contentPath,
		store:       store,
	}
}

// Posts returns all published posts, newest first, without rendered bodies.
func (s *PostService) Posts() ([]*model.Post, error) {
	pattern := filepath.Join(s.contentPath, "posts", "*.mdx")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	authors := s.authors()

	posts := []*model.Post{}
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		fm, err := s.parser.Metadata(source)
		if err != nil {
			slog.Warn("skipping post with broken frontmatter", "file", filepath.Base(file), "error", err)
			continue
		}
		if !fm.Published() {
			continue
		}
		posts = append(posts, s.fromFrontMatter(file, fm, authors))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, nil
}

// Post returns a single published post with its rendered body.
func (s *PostService) Post(slug string) (*model.Post, error) {
	path := filepath.Join(s.contentPath, "posts", slug+".mdx")
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}

	htmlContent, fm, err := s.parser.ParseDocument(source)
	if err != nil {
		return nil, fmt.Errorf("parse post %s: %w", slug, err)
	}
	if !fm.Published() {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}

	post := s.fromFrontMatter(path, fm, s.authors())
	post.Content = string(source)
	post.HTMLContent = string(htmlContent)
	if post.ReadingTime == 0 {
		post.ReadingTime = mdx.EstimateReadingTime(post.HTMLContent)
	}
	return post, nil
}

func (s *PostService) PostsByTag(tag string) ([]*model.Post, error) {
	return s.filtered(func(p *model.Post) []string { return p.Tags }, tag)
}

func (s *PostService) PostsByCategory(category string) ([]*model.Post, error) {
	return s.filtered(func(p *model.Post) []string { return p.Categories }, category)
}

func (s *PostService) filtered(terms func(*model.Post) []string, want string) ([]*model.Post, error) {
	allPosts, err := s.Posts()
	if err != nil {
		return nil, err
	}

	// Frontmatter records term names ("Claims and Recoveries") while links
	// address terms by slug; compare in slug form so both spellings match.
	want = slugutil.Make(want)

	posts := []*model.Post{}
	for _, post := range allPosts {
		for _, term := range terms(post) {
			if slugutil.Make(term) == want {
				posts = append(posts, post)
				break
			}
		}
	}
	return posts, nil
}

func (s *PostService) fromFrontMatter(file string, fm mdx.FrontMatter, authors map[int]string) *model.Post {
	slug := fm.Permalink
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(file), ".mdx")
	}

	post := &model.Post{
		Title:            fm.Title,
		Slug:             slug,
		Excerpt:          fm.Excerpt,
		Categories:       fm.Categories,
		Tags:             fm.Tags,
		FeaturedImage:    fm.FeaturedImage,
		FeaturedImageAlt: fm.FeaturedImageAlt,
		CanonicalURL:     fm.CanonicalURL,
		ReadingTime:      fm.ReadingTime,
		Author:           authors[fm.AuthorID],
	}

	if date, err := parseExportDate(fm.Date); err == nil {
		post.Date = date
	}
	if fm.Updated != "" {
		if updated, err := parseExportDate(fm.Updated); err == nil {
			post.Updated = &updated
		}
	}
	return post
}

// authors maps exported user ids to display names. A missing users
// document just leaves posts without author attribution.
func (s *PostService) authors() map[int]string {
	names := map[int]string{}

	data, err := s.store.ReadFile(export.DocUsers)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("users document unreadable", "doc", export.DocUsers, "error", err)
		}
		return names
	}

	var users []model.Author
	if err := json.Unmarshal(data, &users); err != nil {
		slog.Error("users document malformed", "doc", export.DocUsers, "error", err)
		return names
	}

	for i := range users {
		names[users[i].ID] = users[i].Name()
	}
	return names
}

// parseExportDate accepts the timestamp shapes the export writes:
// ISO 8601 with or without zone, or a bare date.
func parseExportDate(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
