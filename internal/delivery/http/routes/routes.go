package routes

import (
	"log"

	"job-khojo/internal/config"
	"job-khojo/internal/database"
	"job-khojo/internal/delivery/http/handler"
	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/infrastructure/embedding"
	"job-khojo/internal/infrastructure/storage"
	"job-khojo/internal/infrastructure/webhook"
	"job-khojo/internal/pkg/jwt"
	"job-khojo/internal/repository"
	"job-khojo/internal/usecase"
	"job-khojo/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the HTTP layer needs; the app container builds the
// clients once and hands them over here.
type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Uploader storage.Uploader
	Notifier webhook.Notifier // nil = webhook disabled
	Embedder embedding.Embedder
	Logger   *log.Logger
}

type Registry struct {
	cfg config.Config

	health      *handler.HealthHandler
	submission  *handler.SubmissionHandler
	applicant   *handler.ApplicantHandler
	resume      *handler.ResumeHandler
	application *handler.ApplicationHandler
	adminAuth   *handler.AdminAuthHandler
	wsHandler   *ws.Handler

	adminMw *middleware.AuthMiddleware
}

func NewRegistry(d Deps) *Registry {
	applicants := repository.NewPostgresApplicantRepository(d.DB)
	prefs := repository.NewPostgresPreferenceRepository(d.DB)
	resumes := repository.NewPostgresResumeRepository(d.DB)
	applications := repository.NewPostgresApplicationQueryRepository(d.DB)

	allowed := d.Config.Upload.AllowedExtensions

	submissionUC := usecase.NewSubmissionUsecase(
		applicants, prefs, resumes,
		d.Uploader, d.Notifier, d.Embedder,
		d.Cache, allowed, d.Logger,
	)
	applicantUC := usecase.NewApplicantUsecase(applicants, prefs, d.Cache, d.Logger)
	resumeUC := usecase.NewResumeUsecase(applicants, resumes, d.Uploader, d.Cache, allowed, d.Logger)
	listUC := usecase.NewApplicationListUsecase(applications, d.Cache, d.Logger)

	r := &Registry{
		cfg:         d.Config,
		health:      handler.NewHealthHandler(),
		submission:  handler.NewSubmissionHandler(submissionUC),
		applicant:   handler.NewApplicantHandler(applicantUC),
		resume:      handler.NewResumeHandler(resumeUC),
		application: handler.NewApplicationHandler(listUC),
		wsHandler:   ws.NewHandler(d.Hub, d.Logger),
	}

	if d.Config.Admin.Enabled() {
		jwtSvc := jwt.NewHMACService(d.Config.Admin.JWTSecret, d.Config.Admin.TokenTTL)
		r.adminAuth = handler.NewAdminAuthHandler(usecase.NewAdminAuthUsecase(d.Config.Admin, jwtSvc))
		r.adminMw = middleware.NewAuthMiddleware(jwtSvc)
	} else {
		// Login stays routable so callers get a clear 503 instead of a
		// generic 404 when the admin credentials are not configured.
		r.adminAuth = handler.NewAdminAuthHandler(usecase.NewAdminAuthUsecase(d.Config.Admin, nil))
	}

	return r
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.submission.RegisterRoutes(app)

	api := app.Group("/api")
	r.applicant.RegisterRoutes(api)
	r.resume.RegisterRoutes(api)

	r.adminAuth.RegisterRoutes(api)

	if r.adminMw != nil {
		api.Get("/applications", r.application.List, r.adminMw.Middleware())
		app.Get("/ws/applications", r.wsHandler.HandleApplicationsWS, r.adminMw.Middleware())
		return
	}

	// Without admin credentials configured the listing and the live feed
	// stay open, which suits local development and internal deployments.
	api.Get("/applications", r.application.List)
	app.Get("/ws/applications", r.wsHandler.HandleApplicationsWS)
}
