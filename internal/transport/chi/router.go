package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/metrics"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

// NewRouter wires the middleware chain and routes.
func NewRouter(s *Server, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(chiMiddleware.Compress(compressionLevel))
	r.Use(metrics.Middleware())

	r.Route("/api", func(r chi.Router) {
		r.Get("/question", s.Question)
		r.Get("/welcome", s.Welcome)
		r.Get("/allQuestions", s.AllQuestions)
		r.Get("/suggest", s.Suggest)
	})
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.NotFound)

	return r
}
