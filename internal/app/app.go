package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kalyondo/guardianre-website/internal/config"
	"github.com/kalyondo/guardianre-website/internal/db"
	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
	"github.com/kalyondo/guardianre-website/internal/repository"
	"github.com/kalyondo/guardianre-website/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	Store             export.Store
	NavigationService *service.NavigationService
	SiteService       *service.SiteService
	PostService       *service.PostService
	PageService       *service.PageService
	TaxonomyService   *service.TaxonomyService
	RedirectService   *service.RedirectService
	MediaService      *service.MediaService
	EmailService      *service.EmailService
	ContactService    *service.ContactService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	submissionRepository := repository.NewSubmissionRepository(database)

	// Export document store
	store, err := export.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize export store: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ContactEmail,
		cfg.ResendAudienceID,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	navigationService := service.NewNavigationService(store, service.NavigationConfig{
		SiteOrigin:  cfg.SiteOrigin,
		PrimarySlug: cfg.NavPrimarySlug,
		BrandToken:  cfg.NavBrandToken,
		MainSlug:    cfg.NavMainSlug,
	})
	siteService := service.NewSiteService(store, model.Site{
		Name:         cfg.AppName,
		BaseURL:      cfg.SiteOrigin,
		PostsPerPage: 10,
	})
	postService := service.NewPostService(cfg.ContentPath, store)
	pageService := service.NewPageService(cfg.ContentPath)
	taxonomyService := service.NewTaxonomyService(store)
	redirectService := service.NewRedirectService(store)
	mediaService := service.NewMediaService(store)
	contactService := service.NewContactService(submissionRepository, emailService)

	return &App{
		Cfg:               cfg,
		DB:                database,
		Store:             store,
		NavigationService: navigationService,
		SiteService:       siteService,
		PostService:       postService,
		PageService:       pageService,
		TaxonomyService:   taxonomyService,
		RedirectService:   redirectService,
		MediaService:      mediaService,
		EmailService:      emailService,
		ContactService:    contactService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
