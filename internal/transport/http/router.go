package http

import (
	"net/http"

	"github.com/Shreyas75/cmv-backend/internal/application/admin"
	"github.com/Shreyas75/cmv-backend/internal/application/carousel"
	"github.com/Shreyas75/cmv-backend/internal/application/donation"
	"github.com/Shreyas75/cmv-backend/internal/application/event"
	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/application/media"
	"github.com/Shreyas75/cmv-backend/internal/application/otp"
	"github.com/Shreyas75/cmv-backend/internal/application/registration"
	"github.com/Shreyas75/cmv-backend/internal/application/volunteer"
	"github.com/Shreyas75/cmv-backend/internal/config"
	"github.com/Shreyas75/cmv-backend/internal/transport/http/handler"
	appmiddleware "github.com/Shreyas75/cmv-backend/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	var signer admin.TokenSigner
	if deps.JWTProvider != nil {
		signer = deps.JWTProvider
	}

	mediaSvc := media.NewService(deps.S3Store)
	otpSvc := otp.NewService(deps.VerificationRepo, deps.Mailer, deps.SMSSender)
	adminSvc := admin.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, signer)
	volunteerSvc := volunteer.NewService(deps.VolunteerRepo)
	donationSvc := donation.NewService(deps.DonationRepo, deps.Mailer)
	carouselSvc := carousel.NewService(deps.CarouselRepo)
	eventSvc := event.NewService(deps.UpcomingEventRepo, deps.FeaturedEventRepo, deps.ArchivedEventRepo, mediaSvc)
	registrationSvc := registration.NewService(deps.RegistrationRepo, deps.Mailer)
	exportSvc := export.NewService(deps.VolunteerRepo, deps.DonationRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(otpSvc, adminSvc)
	volunteerH := handler.NewVolunteerHandler(volunteerSvc)
	carouselH := handler.NewCarouselHandler(carouselSvc)
	eventH := handler.NewEventHandler(eventSvc, cfg.FrontendURL)
	donationH := handler.NewDonationHandler(donationSvc)
	registrationH := handler.NewRegistrationHandler(registrationSvc)
	utilityH := handler.NewUtilityHandler(mediaSvc, exportSvc)
	adminH := handler.NewAdminHandler(exportSvc)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health", healthH.Check)
		r.With(sensitiveRL.Limit).Post("/send-otp-email", authH.SendOTP)
		r.Post("/verify-otp", authH.VerifyOTP)
		r.With(sensitiveRL.Limit).Post("/admin/login", authH.AdminLogin)

		r.Post("/volunteer", volunteerH.Create)
		r.Post("/submit-user-details", volunteerH.Create)
		r.Get("/export-user-data", utilityH.ExportUserData)

		r.Get("/carousel-items", carouselH.List)

		r.Get("/upcoming-events", eventH.ListUpcoming)
		r.Get("/upcoming-events/{id}", eventH.GetUpcoming)
		r.Get("/featured-events", eventH.ListFeatured)
		r.Get("/featured-events/{id}", eventH.GetFeatured)
		r.Get("/archived-events", eventH.ListArchived)
		r.Get("/archived-events/years", eventH.ListArchivedYears)
		r.Get("/archived-events/{id}", eventH.GetArchived)

		r.With(sensitiveRL.Limit).Post("/donations", donationH.Create)
		r.With(sensitiveRL.Limit).Post("/cgcc2025/register", registrationH.Register)

		// ── Authenticated content management ─────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/carousel-items", carouselH.Create)
			r.Delete("/carousel-items/{id}", carouselH.Delete)

			r.Post("/upcoming-events", eventH.CreateUpcoming)
			r.Put("/upcoming-events/{id}", eventH.UpdateUpcoming)
			r.Delete("/upcoming-events/{id}", eventH.DeleteUpcoming)
			r.Post("/featured-events", eventH.CreateFeatured)
			r.Delete("/featured-events/{id}", eventH.DeleteFeatured)
			r.Post("/archived-events", eventH.CreateArchived)
			r.Put("/archived-events/{id}", eventH.UpdateArchived)
			r.Delete("/archived-events/{id}", eventH.DeleteArchived)

			r.Post("/upload-image", utilityH.UploadImage)

			r.Get("/cgcc2025/stats", registrationH.Stats)
			r.Get("/cgcc2025/export", registrationH.Export)

			r.Get("/admin/export/donations", adminH.ExportDonations)
			r.Get("/admin/stats/donations", adminH.DonationStats)
			r.Get("/admin/donations/recent", adminH.RecentDonations)
		})
	})

	return r
}
