package api

import (
	"log/slog"
	"net/http"
	"time"

	"agency-backend/internal/admin"
	"agency-backend/internal/contact"
	"agency-backend/internal/marketing"
	"agency-backend/internal/middleware"
	"agency-backend/internal/transport"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Deps wires handlers into the router. Contact and Admin are optional; their
// routes are only mounted when a database is configured.
type Deps struct {
	Log             *slog.Logger
	FrontendOrigin  string
	MarketingAPIKey func() string
	Marketing       *marketing.Handler
	Contact         *contact.Handler
	ContactLimiter  *middleware.RateLimiter
	Admin           *admin.Handler
	AdminAuth       func(http.Handler) http.Handler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Recover(d.Log))
	r.Use(middleware.CORS(d.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	register := func(api chi.Router) {
		marketingAPI := api.With(
			middleware.AllowMethods(http.MethodGet),
			middleware.BearerAuth(d.MarketingAPIKey),
		)
		marketingAPI.HandleFunc("/marketing/{type}/random", d.Marketing.Random)
		marketingAPI.HandleFunc("/marketing/random", d.Marketing.Random)

		api.Get("/services", d.Marketing.List(marketing.KindService))
		api.Get("/specialized-services", d.Marketing.List(marketing.KindSpecialized))
		api.Get("/projects", d.Marketing.List(marketing.KindProject))
		api.Get("/projects/{id}", d.Marketing.GetProject)

		if d.Contact != nil {
			if d.ContactLimiter != nil {
				api.With(d.ContactLimiter.Middleware).Post("/contact", d.Contact.Create)
			} else {
				api.Post("/contact", d.Contact.Create)
			}
		}

		if d.Admin != nil {
			api.Post("/admin/login", d.Admin.Login)
			api.Post("/admin/logout", d.Admin.Logout)
		}
		if d.Contact != nil && d.AdminAuth != nil {
			api.With(d.AdminAuth).Get("/admin/contacts", d.Contact.AdminList)
		}
	}

	r.Route("/api", register)
	r.Route("/api/v1", register)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusNotFound, "not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
