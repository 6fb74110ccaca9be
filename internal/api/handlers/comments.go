package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridwansameer/simple-todo-api/internal/api/dto"
	"github.com/ridwansameer/simple-todo-api/internal/api/middleware"
	"github.com/ridwansameer/simple-todo-api/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

// Update handles PATCH /comments/{id}. Only the author may edit; an org admin
// who did not write the comment is rejected like anyone else.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	comment, err := h.store.CommentByID(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}
		internalError(w)
		return
	}

	if comment.CreatedBy == nil || *comment.CreatedBy != userID {
		writeError(w, http.StatusForbidden, "You are not allowed to update this comment")
		return
	}

	var req dto.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	if err := h.store.UpdateCommentContent(r.Context(), commentID, req.Content); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Comment updated successfully"})
}

// Delete handles DELETE /comments/{id}. Author only, same rule as Update.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	comment, err := h.store.CommentByID(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}
		internalError(w)
		return
	}

	if comment.CreatedBy == nil || *comment.CreatedBy != userID {
		writeError(w, http.StatusForbidden, "You are not allowed to delete this comment")
		return
	}

	if err := h.store.DeleteComment(r.Context(), commentID); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Comment deleted successfully"})
}
