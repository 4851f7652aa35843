package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/content-planner/internal/web/handlers"
	"github.com/kozaktomas/content-planner/internal/web/static"
)

func (s *Server) setupRoutes() {
	generateHandler := handlers.NewGenerateHandler(s.config, s.dashboard, s.history, s.templates)
	templatesHandler := handlers.NewTemplatesHandler(s.templates)
	historyHandler := handlers.NewHistoryHandler(s.history)
	configHandler := handlers.NewConfigHandler(s.config)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Generation
		r.Post("/generate", generateHandler.Generate)
		r.Get("/dashboard", generateHandler.Status)

		// Prompt templates
		r.Get("/templates", templatesHandler.List)
		r.Get("/templates/{name}", templatesHandler.Get)
		r.Put("/templates/{name}", templatesHandler.Save)
		r.Delete("/templates/{name}", templatesHandler.Delete)

		// History
		r.Get("/history", historyHandler.List)
		r.Get("/history/{id}", historyHandler.Get)
		r.Delete("/history/{id}", historyHandler.Delete)
		r.Get("/history/{id}/export", historyHandler.Export)

		// Config
		r.Get("/config", configHandler.Get)
	})

	// Dashboard page
	s.router.Get("/", static.Index)
}
