package api

import (
	"github.com/aiedap/aiedap-backend/database"
	"github.com/aiedap/aiedap-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, client services.Client) *routeHandlers {
	return &routeHandlers{
		healthHandler:     newHealthHandler(),
		generationHandler: newGenerationHandler(client),
		projectHandler:    newProjectHandler(database.ProjectRepo(), database.VersionRepo(), client),
	}
}
