package handler

import (
	"net/http"

	"notesgraph/internal/metrics"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig wires the HTTP surface
type RouterConfig struct {
	Graph       *GraphHandler
	Events      http.Handler
	Metrics     *metrics.Registry
	CORSOrigins []string
	Logger      *zap.Logger
}

// NewRouter builds the chi router serving the page, the API, the event
// stream and the metrics endpoint
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(logger))
	if cfg.Metrics != nil {
		router.Use(Metrics(cfg.Metrics))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	h := cfg.Graph
	router.Get("/health", h.Health)
	router.Get("/", h.Page)
	router.Get("/graph.svg", h.SVG)

	router.Route("/api", func(r chi.Router) {
		r.Route("/graph", func(r chi.Router) {
			r.Get("/", h.GetGraph)
			r.Put("/", h.PutGraph)
			r.Post("/load", h.LoadGraph)
		})
		r.Get("/scene", h.GetScene)

		r.Route("/nodes/{id}", func(r chi.Router) {
			r.Post("/hover", h.HoverEnter)
			r.Delete("/hover", h.HoverLeave)
			r.Post("/click", h.Click)
			r.Post("/drag/start", h.DragStart)
			r.Post("/drag/move", h.DragMove)
			r.Post("/drag/end", h.DragEnd)
		})

		r.Route("/viewport", func(r chi.Router) {
			r.Post("/zoom-in", h.ZoomIn)
			r.Post("/zoom-out", h.ZoomOut)
			r.Post("/reset", h.ResetZoom)
			r.Post("/fit", h.Fit)
			r.Post("/resize", h.Resize)
		})

		r.Post("/theme/toggle", h.ToggleTheme)
	})

	if cfg.Events != nil {
		router.Handle("/events", cfg.Events)
	}
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	return router
}
