package routes

import (
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/app"
	"github.com/kalyondo/guardianre-website/internal/handler"
	"github.com/kalyondo/guardianre-website/internal/metric"
	"github.com/kalyondo/guardianre-website/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	navigation := handler.NewNavigationHandler(app.NavigationService)
	site := handler.NewSiteHandler(app.SiteService)
	posts := handler.NewPostsHandler(app.PostService)
	pages := handler.NewPagesHandler(app.PageService)
	taxonomies := handler.NewTaxonomiesHandler(app.TaxonomyService)
	media := handler.NewMediaHandler(app.MediaService)
	contact := handler.NewContactHandler(app.ContactService)
	newsletter := handler.NewNewsletterHandler(app.EmailService)

	mux := http.NewServeMux()

	// Navigation
	mux.HandleFunc("GET /api/navigation", navigation.Tree)
	mux.HandleFunc("GET /api/menus", navigation.Menus)

	// Site metadata
	mux.HandleFunc("GET /api/site", site.Show)

	// Content
	mux.HandleFunc("GET /api/posts", posts.List)
	mux.HandleFunc("GET /api/posts/{slug}", posts.Show)
	mux.HandleFunc("GET /api/posts/tag/{tag}", posts.ListByTag)
	mux.HandleFunc("GET /api/posts/category/{category}", posts.ListByCategory)
	mux.HandleFunc("GET /api/pages", pages.Tree)
	mux.HandleFunc("GET /api/pages/{path...}", pages.Show)
	mux.HandleFunc("GET /api/taxonomies/{taxonomy}", taxonomies.Terms)
	mux.HandleFunc("GET /api/media", media.Manifest)

	// Forms (rate limited)
	rateLimiter := middleware.RateLimitForms()
	mux.HandleFunc("POST /api/contact", rateLimiter(contact.Submit))
	mux.HandleFunc("POST /api/newsletter", rateLimiter(newsletter.Subscribe))

	// Observability
	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metric.Handler())
	}

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestID,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.Redirects(app.RedirectService),
	)

	return h
}
