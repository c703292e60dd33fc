package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the full /api surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.check())

		// Generation endpoints
		r.Post("/evaluate-prompt", handlers.generationHandler.evaluatePrompt())
		r.Post("/generate-content", handlers.generationHandler.generateContent())

		// Project endpoints
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", handlers.projectHandler.createProject())
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Get("/pending", handlers.projectHandler.getPendingProjects())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
			r.Put("/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			r.Put("/{projectID}/approve", handlers.projectHandler.approveProject())
			r.Put("/{projectID}/reject", handlers.projectHandler.rejectProject())
			r.Get("/{projectID}/versions", handlers.projectHandler.getProjectVersions())
		})

		r.Get("/students", handlers.projectHandler.getAllStudents())
	})
}
