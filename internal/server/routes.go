package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthai/internal/chat"
	"healthai/internal/handlers/api"
	"healthai/internal/metrics"
	"healthai/internal/middleware"
)

// RegisterRoutes registers all application routes. Lookups are counted on
// recorder; store backs readiness and the /metrics collector. The catalogue
// comes from Cfg.Catalog.
func (s *Server) RegisterRoutes(store metrics.Store, recorder *metrics.Recorder) {
	// Initialize handlers
	probeHandler := api.NewProbeHandler(store)
	catalogHandler := api.NewCatalogHandler(s.Cfg.Catalog)
	lookupHandler := api.NewLookupHandler(recorder)
	chatHandler := api.NewChatHandler(chat.NewService(s.Cfg.ChatMaxTurns), recorder)
	analyticsHandler := api.NewAnalyticsHandler()

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	registry := metrics.NewRegistry(store)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	})))

	// JSON API
	v1 := s.App.Group("/api/v1", middleware.NoStore)
	v1.Get("/catalog", catalogHandler.Catalog)
	v1.Get("/diseases", catalogHandler.Diseases)

	// Lookups respond after the configured simulated latency
	latency := middleware.SimulatedLatency(s.Cfg.SimulatedLatency)
	v1.Post("/symptoms/analyze", latency, lookupHandler.AnalyzeSymptoms)
	v1.Get("/remedies", latency, lookupHandler.Remedy)
	v1.Post("/treatment-plans", latency, lookupHandler.TreatmentPlan)
	v1.Post("/chat/messages", latency, chatHandler.Send)

	v1.Get("/chat/transcript", chatHandler.Transcript)
	v1.Delete("/chat/transcript", chatHandler.Reset)

	v1.Get("/analytics/metrics", analyticsHandler.Metrics)
	v1.Get("/analytics/metrics/:id", analyticsHandler.Metric)
	v1.Get("/analytics/summary", analyticsHandler.Summary)
	v1.Post("/analytics/bmi", analyticsHandler.BMI)
}
