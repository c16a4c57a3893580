package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"automark/internal/core/port"
	"automark/internal/metrics"
)

// Options configures the router.
type Options struct {
	// AllowedOrigins feeds the CORS middleware.
	AllowedOrigins []string
	// JWTSecret verifies HS256 bearer tokens on the API routes.
	JWTSecret string
	// MetricsPath mounts the Prometheus handler when non-empty and
	// metrics are enabled.
	MetricsPath string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router; everything under /api/v1
// requires a bearer token.
type Handler struct {
	svc     port.CampaignUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. m may be nil, in
// which case no metrics are recorded or served.
func NewHandler(svc port.CampaignUseCase, opts Options, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger.With(slog.String("component", "http")), metrics: m}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(h.observe)

	r.Get("/health", h.handleHealth)
	if m != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Authenticate([]byte(opts.JWTSecret)))

		r.Post("/strategy", h.handleGenerateStrategy)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Post("/execute", h.handleExecuteCampaign)
				r.Post("/pause", h.handlePauseCampaign)
				r.Post("/sync", h.handleSyncPerformance)
				r.Get("/performance", h.handleListPerformance)
				r.Get("/logs", h.handleListLogs)
				r.Get("/analytics", h.handleAnalytics)
				r.Post("/content/ad-copy", h.handleGenerateAdCopy)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
