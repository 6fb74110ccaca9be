package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridwansameer/simple-todo-api/internal/api/dto"
	"github.com/ridwansameer/simple-todo-api/internal/api/middleware"
	"github.com/ridwansameer/simple-todo-api/internal/authz"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
)

type OrganisationHandler struct {
	store *store.Store
	authz *authz.Service
}

func NewOrganisationHandler(st *store.Store, az *authz.Service) *OrganisationHandler {
	return &OrganisationHandler{store: st, authz: az}
}

// List handles GET /organisations. Only the caller's organisations are
// returned.
func (h *OrganisationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	orgs, err := h.store.OrganisationsForUser(r.Context(), userID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, orgs)
}

// Get handles GET /organisations/{id}
func (h *OrganisationHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	member, err := h.authz.IsMember(r.Context(), orgID, userID)
	if err != nil {
		internalError(w)
		return
	}
	if !member {
		writeError(w, http.StatusUnauthorized, "User is not in the organisation")
		return
	}

	org, err := h.store.OrganisationByID(r.Context(), orgID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, []models.Organisation{*org})
}

// Create handles POST /organisations. The caller becomes ADMIN of the new
// organisation in the same transaction as the insert.
func (h *OrganisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req dto.OrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	org, err := h.store.CreateOrganisation(r.Context(), req.Name, userID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, org)
}

// Update handles PATCH /organisations/{id}
func (h *OrganisationHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}

	var req dto.OrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	org, err := h.store.UpdateOrganisationName(r.Context(), orgID, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Organisation not found")
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, org)
}

// Delete handles DELETE /organisations/{id}. Admin only; memberships,
// projects, todos, assignments and comments cascade away with the row.
func (h *OrganisationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	admin, err := h.authz.IsAdmin(r.Context(), orgID, userID)
	if err != nil {
		internalError(w)
		return
	}
	if !admin {
		writeError(w, http.StatusForbidden, "User is not an admin")
		return
	}

	if err := h.store.DeleteOrganisation(r.Context(), orgID); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Organisation deleted"})
}

// ListProjects handles GET /organisations/{id}/projects
func (h *OrganisationHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	member, err := h.authz.IsMember(r.Context(), orgID, userID)
	if err != nil {
		internalError(w)
		return
	}
	if !member {
		writeError(w, http.StatusUnauthorized, "User is not in the organisation")
		return
	}

	projects, err := h.store.ProjectsByOrganisation(r.Context(), orgID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /organisations/{id}/projects
func (h *OrganisationHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}
	userID := middleware.GetUserID(r.Context())

	member, err := h.authz.IsMember(r.Context(), orgID, userID)
	if err != nil {
		internalError(w)
		return
	}
	if !member {
		writeError(w, http.StatusUnauthorized, "User is not in the organisation")
		return
	}

	var req dto.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	project := models.Project{
		Name:           req.Name,
		Description:    req.Description,
		OrganisationID: orgID,
	}
	if err := h.store.CreateProject(r.Context(), &project); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// ListMembers handles GET /organisations/{id}/members
func (h *OrganisationHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}

	members, err := h.store.MembersOfOrganisation(r.Context(), orgID)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

// AddMember handles POST /organisations/{id}/members
func (h *OrganisationHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}

	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	membership := models.Membership{
		UserID:         req.UserID,
		OrganisationID: orgID,
		Role:           req.Role,
	}
	if err := h.store.AddMember(r.Context(), &membership); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "User is already a member")
		case errors.Is(err, store.ErrInvalidReference):
			writeError(w, http.StatusBadRequest, "Invalid user or organisation")
		default:
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "User added successfully"})
}

// UpdateMember handles PUT /organisations/{id}/members
func (h *OrganisationHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}

	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	if err := h.store.UpdateMemberRole(r.Context(), orgID, req.UserID, req.Role); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "User updated successfully"})
}

// RemoveMember handles DELETE /organisations/{id}/members
func (h *OrganisationHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	orgID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid organisation ID")
		return
	}

	var req dto.RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	if err := h.store.RemoveMember(r.Context(), orgID, req.UserID); err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "User deleted successfully"})
}
