package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ridwansameer/simple-todo-api/internal/api/dto"
	"github.com/ridwansameer/simple-todo-api/internal/api/middleware"
	"github.com/ridwansameer/simple-todo-api/internal/authz"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
)

type ProjectHandler struct {
	store *store.Store
	authz *authz.Service
}

func NewProjectHandler(st *store.Store, az *authz.Service) *ProjectHandler {
	return &ProjectHandler{store: st, authz: az}
}

// CreateTodo handles POST /projects/{id}/todos. Requires membership of the
// organisation owning the project; a nonexistent project is forbidden too.
func (h *ProjectHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	projectID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	var req dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	member, err := h.authz.IsMemberOfProjectOrg(r.Context(), projectID, userID)
	if err != nil {
		internalError(w)
		return
	}
	if !member {
		writeError(w, http.StatusForbidden, "User is not in the organisation of the project")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	dueDate, _ := req.ParseDueDate() // already validated

	todo := models.Todo{
		Title:       req.Title,
		Description: *req.Description,
		ProjectID:   projectID,
		Status:      status,
		DueDate:     dueDate,
		CreatedBy:   &userID,
	}
	if err := h.store.CreateTodo(r.Context(), &todo); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

// ListTodos handles GET /projects/{id}/todos
func (h *ProjectHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	projectID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	todos, err := h.store.TodosByProject(r.Context(), projectID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}
