package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/mdx"
	"github.com/kalyondo/guardianre-website/internal/model"
	slugutil "github.com/kalyondo/guardianre-website/internal/slug"
)

var ErrPageNotFound = errors.New("page not found")

// PageService reads the transformed pages (content/pages/*.mdx) and
// rebuilds the page hierarchy from the full paths the export computed.
// A page whose parent never made it into the export becomes a root
// rather than disappearing.
type PageService struct {
	parser      *mdx.Parser
	contentPath string
}

func NewPageService(contentPath string) *PageService {
	return &PageService{
		parser:      mdx.NewParser(),
		contentPath: contentPath,
	}
}

// Pages returns all published pages as a flat list ordered by menu order,
// then title.
func (s *PageService) Pages() ([]*model.Page, error) {
	pages, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Title < pages[j].Title
	})
	return pages, nil
}

// Tree assembles the page hierarchy. Parent links derive from each page's
// full path: "about-us/our-team" hangs off "about-us" when that page
// exists, roots otherwise. Siblings sort by menu order, then title, at
// every level.
func (s *PageService) Tree() ([]*model.Page, error) {
	pages, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]*model.Page, len(pages))
	for _, page := range pages {
		byPath[page.Path] = page
	}

	roots := []*model.Page{}
	for _, page := range pages {
		parentPath := parentOf(page.Path)
		if parentPath == "" {
			roots = append(roots, page)
			continue
		}
		parent, ok := byPath[parentPath]
		if !ok {
			roots = append(roots, page)
			continue
		}
		page.Parent = parent
		parent.Children = append(parent.Children, page)
	}

	sortPages(roots)
	return roots, nil
}

// Page returns a single published page by its full path, with the
// rendered body.
func (s *PageService) Page(fullPath string) (*model.Page, error) {
	fullPath = strings.Trim(fullPath, "/")
	if fullPath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPageNotFound)
	}

	// Files are flat under pages/, named by slug (the last path segment).
	segments := strings.Split(fullPath, "/")
	slug := segments[len(segments)-1]

	source, err := os.ReadFile(filepath.Join(s.contentPath, "pages", slug+".mdx"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, fullPath)
	}

	htmlContent, fm, err := s.parser.ParseDocument(source)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", fullPath, err)
	}
	if !fm.Published() {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, fullPath)
	}

	page := fromPageFrontMatter(slug, fm)
	if page.Path != fullPath {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, fullPath)
	}
	page.Content = string(source)
	page.HTMLContent = string(htmlContent)
	return page, nil
}

func (s *PageService) loadAll() ([]*model.Page, error) {
	pattern := filepath.Join(s.contentPath, "pages", "*.mdx")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	pages := []*model.Page{}
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		fm, err := s.parser.Metadata(source)
		if err != nil {
			slog.Warn("skipping page with broken frontmatter", "file", filepath.Base(file), "error", err)
			continue
		}
		if !fm.Published() {
			continue
		}
		slug := strings.TrimSuffix(filepath.Base(file), ".mdx")
		pages = append(pages, fromPageFrontMatter(slug, fm))
	}
	return pages, nil
}

func fromPageFrontMatter(slug string, fm mdx.FrontMatter) *model.Page {
	if fm.Permalink != "" {
		slug = fm.Permalink
	}
	path := fm.Path
	if path == "" {
		path = slug
	}
	title := fm.Title
	if title == "" {
		title = slugutil.Title(slug)
	}
	return &model.Page{
		Title:    title,
		Slug:     slug,
		Path:     strings.Trim(path, "/"),
		Order:    fm.MenuOrder,
		ParentID: fm.ParentID,
		Excerpt:  fm.Excerpt,
		Children: []*model.Page{},
	}
}

func parentOf(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

func sortPages(pages []*model.Page) {
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Title < pages[j].Title
	})
	for _, page := range pages {
		sortPages(page.Children)
	}
}
