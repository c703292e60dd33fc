package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aiedap/aiedap-backend/api"
	"github.com/aiedap/aiedap-backend/database"
)

// stubClient stands in for the Gemini collaborator.
type stubClient struct {
	evalResponse string
	evalErr      error
	htmlResponse string
	htmlErr      error
}

func (s *stubClient) EvaluatePrompt(ctx context.Context, prompt, studentName string) (string, error) {
	return s.evalResponse, s.evalErr
}

func (s *stubClient) GenerateHTMLContent(ctx context.Context, prompt, studentName string) (string, error) {
	return s.htmlResponse, s.htmlErr
}

func newTestServer(t *testing.T, client *stubClient) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	server, err := api.NewServer(database.New(db), client)
	require.NoError(t, err)
	return server.Handler
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func createProject(t *testing.T, handler http.Handler, studentName, title, prompt string) float64 {
	t.Helper()

	w := doJSON(t, handler, http.MethodPost, "/api/projects", map[string]any{
		"student_name": studentName,
		"title":        title,
		"prompt":       prompt,
	})
	require.Equal(t, http.StatusOK, w.Code)

	payload := decode(t, w)
	project := payload["project"].(map[string]any)
	return project["id"].(float64)
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateProject_MissingPromptReturns400(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodPost, "/api/projects", map[string]any{
		"student_name": "alice",
		"title":        "Quadratics",
		"prompt":       "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	payload := decode(t, w)
	assert.Contains(t, payload["error"], "prompt")
}

func TestCreateProject_StartsPending(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodPost, "/api/projects", map[string]any{
		"student_name": "alice",
		"title":        "Quadratics",
		"prompt":       "graph quadratics",
	})

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, true, payload["success"])
	project := payload["project"].(map[string]any)
	assert.Equal(t, "pending", project["status"])
	assert.NotZero(t, project["id"])
}

func TestGetProject_UnknownIDReturns404(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodGet, "/api/projects/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	payload := decode(t, w)
	assert.NotEmpty(t, payload["error"])
}

func TestApproveProject_UnknownIDReturns404(t *testing.T) {
	handler := newTestServer(t, &stubClient{htmlResponse: "<html></html>"})

	w := doJSON(t, handler, http.MethodPut, "/api/projects/999/approve", map[string]any{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveProject_GeneratesContentAndSnapshots(t *testing.T) {
	handler := newTestServer(t, &stubClient{htmlResponse: "<html>generated</html>"})
	id := createProject(t, handler, "alice", "Quadratics", "graph quadratics")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1/approve", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	payload := decode(t, w)
	project := payload["project"].(map[string]any)
	assert.Equal(t, "approved", project["status"])
	assert.Equal(t, "<html>generated</html>", project["html_content"])
	assert.Equal(t, id, project["id"])

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	versions := decode(t, w)["versions"].([]any)
	require.Len(t, versions, 1)
	version := versions[0].(map[string]any)
	assert.Equal(t, "approved", version["status"])
	assert.Equal(t, "graph quadratics", version["prompt"])
	assert.Equal(t, id, version["project_id"])
}

func TestApproveProject_GenerationFailureReturns500(t *testing.T) {
	handler := newTestServer(t, &stubClient{htmlErr: errors.New("model unavailable")})
	createProject(t, handler, "alice", "Quadratics", "graph quadratics")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1/approve", map[string]any{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	payload := decode(t, w)
	assert.NotEmpty(t, payload["error"])
}

func TestRejectProject_StoresReasonWithoutSnapshot(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	createProject(t, handler, "alice", "Cats", "draw a cat")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1/reject", map[string]any{
		"rejection_reason": "not math related",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project := decode(t, w)["project"].(map[string]any)
	assert.Equal(t, "rejected", project["status"])
	assert.Equal(t, "not math related", project["rejection_reason"])

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1/versions", nil)
	versions := decode(t, w)["versions"].([]any)
	assert.Empty(t, versions)
}

func TestUpdateProject_PromptChangeAppendsVersion(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	id := createProject(t, handler, "alice", "Quadratics", "graph quadratics")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1", map[string]any{
		"prompt": "graph cubics instead",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project := decode(t, w)["project"].(map[string]any)
	assert.Equal(t, "graph cubics instead", project["prompt"])
	assert.Equal(t, "Quadratics", project["title"])

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1/versions", nil)
	versions := decode(t, w)["versions"].([]any)
	require.Len(t, versions, 1)
	version := versions[0].(map[string]any)
	assert.Equal(t, "graph cubics instead", version["prompt"])
	assert.Equal(t, id, version["project_id"])
}

func TestUpdateProject_TitleOnlyChangeSkipsVersion(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	createProject(t, handler, "alice", "Quadratics", "graph quadratics")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1", map[string]any{
		"title": "Parabolas",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1/versions", nil)
	versions := decode(t, w)["versions"].([]any)
	assert.Empty(t, versions)
}

func TestUpdateProject_UnknownIDReturns404(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodPut, "/api/projects/999", map[string]any{"title": "ghost"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject_RemovesProjectAndVersions(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	createProject(t, handler, "alice", "Quadratics", "graph quadratics")

	// Touch the prompt so a version exists before the delete.
	w := doJSON(t, handler, http.MethodPut, "/api/projects/1", map[string]any{"prompt": "new prompt"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodDelete, "/api/projects/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/api/projects/1/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["versions"])
}

func TestDeleteProject_UnknownIDReturns404(t *testing.T) {
	handler := newTestServer(t, &stubClient{})

	w := doJSON(t, handler, http.MethodDelete, "/api/projects/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjects_StudentFilter(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	createProject(t, handler, "alice", "One", "p1")
	createProject(t, handler, "bob", "Two", "p2")

	w := doJSON(t, handler, http.MethodGet, "/api/projects?student_name=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode(t, w)["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "alice", projects[0].(map[string]any)["student_name"])

	w = doJSON(t, handler, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["projects"], 2)
}

func TestPendingProjects_ExcludesDecided(t *testing.T) {
	handler := newTestServer(t, &stubClient{htmlResponse: "<html></html>"})
	createProject(t, handler, "alice", "One", "p1")
	createProject(t, handler, "bob", "Two", "p2")

	w := doJSON(t, handler, http.MethodPut, "/api/projects/1/approve", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/api/projects/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode(t, w)["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "Two", projects[0].(map[string]any)["title"])
}

func TestGetStudents_SortedDistinct(t *testing.T) {
	handler := newTestServer(t, &stubClient{})
	createProject(t, handler, "carol", "One", "p1")
	createProject(t, handler, "alice", "Two", "p2")
	createProject(t, handler, "alice", "Three", "p3")

	w := doJSON(t, handler, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, w.Code)

	payload := decode(t, w)
	assert.Equal(t, []any{"alice", "carol"}, payload["students"])
}
