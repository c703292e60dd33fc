package api

import "github.com/aiedap/aiedap-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler     healthHandler
	generationHandler generationHandler
	projectHandler    projectHandler
}

// Request payloads

type generationRequest struct {
	Prompt      string `json:"prompt"`
	StudentName string `json:"student_name"`
}

type createProjectRequest struct {
	StudentName string             `json:"student_name"`
	Title       string             `json:"title"`
	Prompt      string             `json:"prompt"`
	Evaluation  *models.Evaluation `json:"evaluation"`
}

type approveProjectRequest struct {
	Prompt      string `json:"prompt"`
	StudentName string `json:"student_name"`
}

type rejectProjectRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// Response envelopes. Success responses carry success=true next to their
// resource; errors are a bare {"error": message} written by the Responder.

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type evaluationResponse struct {
	Success    bool              `json:"success"`
	Evaluation models.Evaluation `json:"evaluation"`
}

type htmlContentResponse struct {
	Success     bool   `json:"success"`
	HTMLContent string `json:"html_content"`
}

type projectResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
}

type projectsResponse struct {
	Success  bool             `json:"success"`
	Projects []models.Project `json:"projects"`
}

type versionsResponse struct {
	Success  bool             `json:"success"`
	Versions []models.Version `json:"versions"`
}

type studentsResponse struct {
	Success  bool     `json:"success"`
	Students []string `json:"students"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
