package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aiedap/aiedap-backend/database"
	"github.com/aiedap/aiedap-backend/errs"
	"github.com/aiedap/aiedap-backend/models"
	"github.com/aiedap/aiedap-backend/services"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	versionRepo *database.VersionRepo
	client      services.Client
}

func newProjectHandler(projectRepo *database.ProjectRepo, versionRepo *database.VersionRepo, client services.Client) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		versionRepo: versionRepo,
		client:      client,
	}
}

// parseProjectID pulls the integer project id out of the route path.
func parseProjectID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "projectID")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid project id")
	}
	return uint(id), nil
}

// decodeBody decodes a JSON request body into dst. An empty body is allowed
// and leaves dst zero-valued; the PUT endpoints all take optional payloads.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errs.NewBadRequestError("malformed request body")
	}
	return nil
}

// createProject stores a student's submission. The project always enters the
// pending state no matter what the payload says.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.StudentName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("student_name"))
			return
		}
		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Prompt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("prompt"))
			return
		}

		project := models.Project{
			StudentName: req.StudentName,
			Title:       req.Title,
			Prompt:      req.Prompt,
			Evaluation:  req.Evaluation,
		}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteOK(w, projectResponse{Success: true, Project: project})
	}
}

// getPendingProjects lists projects awaiting review, newest first.
func (h projectHandler) getPendingProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindPending()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find pending", "projects", err))
			return
		}

		h.responder.WriteOK(w, projectsResponse{Success: true, Projects: projects})
	}
}

// getAllProjects lists projects newest first, optionally filtered by the
// student_name query parameter (exact match).
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentName := r.URL.Query().Get("student_name")

		projects, err := h.projectRepo.FindAll(studentName)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteOK(w, projectsResponse{Success: true, Projects: projects})
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteOK(w, projectResponse{Success: true, Project: *project})
	}
}

// approveProject regenerates the HTML content (the request's prompt and
// student name take precedence over the stored ones), marks the project
// approved, and appends a version snapshot tagged approved. The snapshot
// keeps the stored pre-approval prompt and evaluation alongside the freshly
// generated content.
func (h projectHandler) approveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req approveProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		prompt := req.Prompt
		if prompt == "" {
			prompt = project.Prompt
		}
		studentName := req.StudentName
		if studentName == "" {
			studentName = project.StudentName
		}

		htmlContent, err := h.client.GenerateHTMLContent(r.Context(), prompt, studentName)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.projectRepo.Approve(id, &htmlContent)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("approve", "project", err))
			return
		}

		version := models.Version{
			ProjectID:   project.ID,
			Prompt:      project.Prompt,
			HTMLContent: &htmlContent,
			Evaluation:  project.Evaluation,
			Status:      models.StatusApproved,
		}
		if err := h.versionRepo.Add(&version); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "version", err))
			return
		}

		h.responder.WriteOK(w, projectResponse{Success: true, Project: *updated})
	}
}

// rejectProject marks the project rejected with an optional reason. No
// version snapshot on rejection.
func (h projectHandler) rejectProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req rejectProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var reason *string
		if req.RejectionReason != "" {
			reason = &req.RejectionReason
		}

		updated, err := h.projectRepo.Reject(id, reason)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("reject", "project", err))
			return
		}

		h.responder.WriteOK(w, projectResponse{Success: true, Project: *updated})
	}
}

// updateProject applies a typed partial update. When the prompt or the
// evaluation is among the provided fields, a version snapshot of the fully
// merged new values is appended before the update lands.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var upd models.ProjectUpdate
		if err := decodeBody(r, &upd); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if upd.TouchesPromptOrEvaluation() {
			merged := *project
			upd.Apply(&merged)

			version := models.Version{
				ProjectID:   project.ID,
				Prompt:      merged.Prompt,
				HTMLContent: merged.HTMLContent,
				Evaluation:  merged.Evaluation,
				Status:      merged.Status,
			}
			if err := h.versionRepo.Add(&version); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "version", err))
				return
			}
		}

		updated, err := h.projectRepo.Update(id, upd)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteOK(w, projectResponse{Success: true, Project: *updated})
	}
}

// deleteProject removes a project and its version history.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteOK(w, messageResponse{Success: true, Message: "Project deleted"})
	}
}

// getProjectVersions returns the project's version history, newest first. An
// unknown project id yields an empty list rather than a 404.
func (h projectHandler) getProjectVersions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		versions, err := h.versionRepo.FindByProject(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "versions", err))
			return
		}

		h.responder.WriteOK(w, versionsResponse{Success: true, Versions: versions})
	}
}

// getAllStudents returns the sorted distinct student names.
func (h projectHandler) getAllStudents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := h.projectRepo.DistinctStudents()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "students", err))
			return
		}

		h.responder.WriteOK(w, studentsResponse{Success: true, Students: students})
	}
}
