package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hackathon/starter-api/internal/api/handler"
	apimw "github.com/hackathon/starter-api/internal/api/middleware"
	"github.com/hackathon/starter-api/internal/config"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	cfg *config.Config,
	prober handler.Pinger,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(CORSOptions(cfg.CORSOrigins)))
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	// --- handler instances ---
	hh := handler.NewHealthHandler()
	hello := handler.NewHelloHandler(config.APIPrefix, cfg.NextPublicAPIURL)
	dh := handler.NewDBHandler(prober)

	// --- routes ---
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route(config.APIPrefix, func(r chi.Router) {
		r.Get("/health", hh.Health)
		r.Get("/hello", hello.Hello)
		r.Get("/db/ping", dh.Ping)
	})

	return r
}

// CORSOptions builds the cross-origin policy. An empty allow-list allows
// every origin; the caller's origin is echoed back because browsers reject
// a wildcard on credentialed requests.
func CORSOptions(origins []string) cors.Options {
	var allowAll func(*http.Request, string) bool
	if len(origins) == 0 {
		allowAll = func(*http.Request, string) bool { return true }
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowOriginFunc:  allowAll,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}
