package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/metric"
	"github.com/kalyondo/guardianre-website/internal/model"
)

// maxMainMenuRoots caps an overgrown flat "main menu" to a usable top bar.
const maxMainMenuRoots = 8

// NavigationConfig carries the menu-selection identifiers and the production
// origin whose links are rewritten site-relative.
type NavigationConfig struct {
	SiteOrigin  string
	PrimarySlug string
	BrandToken  string
	MainSlug    string
}

// NavigationService turns the flat menu records of the export into the
// ordered navigation tree the page-rendering layer consumes. It never
// returns an error: every failure degrades to a usable tree, ultimately
// the hardcoded default. A broken menu must not take the header down
// with it.
type NavigationService struct {
	store       export.Store
	siteHost    string
	primarySlug string
	brandToken  string
	mainSlug    string
}

func NewNavigationService(store export.Store, cfg NavigationConfig) *NavigationService {
	return &NavigationService{
		store:       store,
		siteHost:    originHost(cfg.SiteOrigin),
		primarySlug: cfg.PrimarySlug,
		brandToken:  strings.ToLower(cfg.BrandToken),
		mainSlug:    cfg.MainSlug,
	}
}

func originHost(origin string) string {
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}

// Navigation loads the menu document and returns the applicable tree.
// Selection order: the primary menu (reserved slug, or brand token in the
// menu name) at full depth; then the generic main menu truncated to the
// first 8 roots; then the default navigation.
func (s *NavigationService) Navigation() []*model.MenuItem {
	menus, err := s.loadMenus()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("menu document missing, serving default navigation", "doc", export.DocMenus)
		} else {
			slog.Error("menu document unreadable, serving default navigation", "doc", export.DocMenus, "error", err)
		}
		metric.NavigationFallbacks.Inc()
		return DefaultNavigation()
	}

	if menu, ok := s.primaryMenu(menus); ok {
		return s.BuildMenuTree(menu.Items)
	}

	if menu, ok := s.mainMenu(menus); ok {
		tree := s.BuildMenuTree(menu.Items)
		if len(tree) > maxMainMenuRoots {
			tree = tree[:maxMainMenuRoots]
		}
		return tree
	}

	slog.Info("no usable menu in document, serving default navigation")
	metric.NavigationFallbacks.Inc()
	return DefaultNavigation()
}

// Menus returns every menu in the document verbatim, empty when the
// document is missing or unreadable.
func (s *NavigationService) Menus() []model.Menu {
	menus, err := s.loadMenus()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("menu document missing", "doc", export.DocMenus)
		} else {
			slog.Error("menu document unreadable", "doc", export.DocMenus, "error", err)
		}
		return []model.Menu{}
	}
	return menus
}

func (s *NavigationService) loadMenus() ([]model.Menu, error) {
	data, err := s.store.ReadFile(export.DocMenus)
	if err != nil {
		return nil, err
	}
	var menus []model.Menu
	if err := json.Unmarshal(data, &menus); err != nil {
		return nil, fmt.Errorf("decode %s: %w", export.DocMenus, err)
	}
	return menus, nil
}

// primaryMenu finds the first menu matching the reserved primary slug or
// carrying the brand token in its name. The first match decides: when it
// has no items the caller moves on to the main-menu rule, later matches
// are not considered.
func (s *NavigationService) primaryMenu(menus []model.Menu) (model.Menu, bool) {
	for _, m := range menus {
		if m.Slug == s.primarySlug || s.matchesBrand(m.Name) {
			return m, len(m.Items) > 0
		}
	}
	return model.Menu{}, false
}

func (s *NavigationService) mainMenu(menus []model.Menu) (model.Menu, bool) {
	for _, m := range menus {
		if m.Slug == s.mainSlug {
			return m, len(m.Items) > 0
		}
	}
	return model.Menu{}, false
}

func (s *NavigationService) matchesBrand(name string) bool {
	return s.brandToken != "" && strings.Contains(strings.ToLower(name), s.brandToken)
}

// BuildMenuTree assembles raw records into a forest. Two passes: map every
// record to a node indexed by id, then link children to parents. Records
// whose parent id is not in the menu are dropped. Roots and each root's
// direct children are stable-sorted by order; deeper levels keep input
// order.
func (s *NavigationService) BuildMenuTree(items []model.RawMenuItem) []*model.MenuItem {
	nodes := make([]*model.MenuItem, 0, len(items))
	index := make(map[int]*model.MenuItem, len(items))

	for _, raw := range items {
		title := raw.Title
		if title == "" {
			title = "Untitled"
		}
		node := &model.MenuItem{
			ID:          raw.ID,
			Title:       title,
			URL:         s.ResolveURL(raw),
			Order:       raw.Order,
			ParentID:    raw.ParentID,
			Target:      raw.Target,
			Description: raw.Description,
			Children:    []*model.MenuItem{},
		}
		nodes = append(nodes, node)
		index[node.ID] = node
	}

	roots := []*model.MenuItem{}
	for _, node := range nodes {
		if node.ParentID == 0 {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[node.ParentID]
		if !ok {
			// dangling parent reference, drop the item
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Order < roots[j].Order
	})
	for _, root := range roots {
		children := root.Children
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Order < children[j].Order
		})
	}

	return roots
}

// ResolveURL maps a raw record to its link target. Custom links on the
// production origin are rewritten site-relative, resolved content and
// taxonomy references get canonical paths, anything else falls back to the
// authored URL or "#". Never empty, never an error.
func (s *NavigationService) ResolveURL(item model.RawMenuItem) string {
	switch item.Kind {
	case model.MenuItemKindCustom:
		if item.URL != "" {
			return s.relativize(item.URL)
		}
	case model.MenuItemKindPostType:
		if item.ResolvedSlug != "" {
			switch item.ResolvedType {
			case model.ResolvedTypePage:
				return "/" + item.ResolvedSlug
			case model.ResolvedTypePost:
				return "/blog/" + item.ResolvedSlug
			}
		}
	case model.MenuItemKindTaxonomy:
		if item.ResolvedSlug != "" {
			switch item.ObjectType {
			case model.MenuObjectTypeCategory:
				return "/category/" + item.ResolvedSlug
			case model.MenuObjectTypePostTag:
				return "/tag/" + item.ResolvedSlug
			}
		}
	}

	if item.URL != "" {
		return item.URL
	}
	return "#"
}

// relativize strips the production origin from absolute URLs so exported
// links keep working on any deployment of the static site. Other origins
// pass through untouched.
func (s *NavigationService) relativize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if s.siteHost == "" || !strings.EqualFold(u.Host, s.siteHost) {
		return raw
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		path += "#" + u.Fragment
	}
	return path
}

// DefaultNavigation is the hand-authored fallback served when the export
// carries no usable menu. Always a fresh copy, callers own the result.
func DefaultNavigation() []*model.MenuItem {
	entries := []struct {
		title       string
		url         string
		description string
	}{
		{"Home", "/", "Return to the homepage"},
		{"About Us", "/about-us", "Who we are and how we work"},
		{"Partnerships", "/partnerships", "Cedants, carriers and broker partners"},
		{"Products", "/products", "Reinsurance products we broker"},
		{"Services", "/services", "Advisory and placement services"},
		{"News", "/news", "Company news and market updates"},
		{"Contact", "/contact", "Get in touch with our team"},
	}

	nav := make([]*model.MenuItem, 0, len(entries))
	for i, e := range entries {
		nav = append(nav, &model.MenuItem{
			ID:          i + 1,
			Title:       e.title,
			URL:         e.url,
			Order:       i + 1,
			Description: e.description,
			Children:    []*model.MenuItem{},
		})
	}
	return nav
}
