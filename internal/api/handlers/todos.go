package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridwansameer/simple-todo-api/internal/api/dto"
	"github.com/ridwansameer/simple-todo-api/internal/api/middleware"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
)

type TodoHandler struct {
	store *store.Store
}

func NewTodoHandler(st *store.Store) *TodoHandler {
	return &TodoHandler{store: st}
}

// CreateAssignments handles POST /todos/{id}/assignments. The batch either
// fully persists or not at all.
func (h *TodoHandler) CreateAssignments(w http.ResponseWriter, r *http.Request) {
	todoID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	var req dto.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	if err := h.store.CreateAssignments(r.Context(), todoID, req.UintIDs()); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "User is already assigned")
		case errors.Is(err, store.ErrInvalidReference):
			writeError(w, http.StatusBadRequest, "Invalid user or todo")
		default:
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.SuccessResponse{Message: "Assignments created successfully"})
}

// ListAssignments handles GET /todos/{id}/assignments
func (h *TodoHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	todoID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	assignments, err := h.store.AssignmentsByTodo(r.Context(), todoID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}

// DeleteAssignments handles DELETE /todos/{id}/assignments. Ids that are not
// currently assigned are skipped without affecting the rest.
func (h *TodoHandler) DeleteAssignments(w http.ResponseWriter, r *http.Request) {
	todoID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	var req dto.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	if err := h.store.DeleteAssignments(r.Context(), todoID, req.UintIDs()); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Assignments deleted successfully"})
}

// ListComments handles GET /todos/{id}/comments
func (h *TodoHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	todoID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	comments, err := h.store.CommentsByTodo(r.Context(), todoID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /todos/{id}/comments
func (h *TodoHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	todoID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	var req dto.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	comment := models.Comment{
		Content:   req.Content,
		TodoID:    todoID,
		CreatedBy: &userID,
	}
	if err := h.store.CreateComment(r.Context(), &comment); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			writeError(w, http.StatusBadRequest, "Todo not found")
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
