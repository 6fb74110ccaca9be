package dto

import (
	"time"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
)

// Accepted due-date layouts, tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

type CreateTodoRequest struct {
	Title string `json:"title"`
	// Description must be present in the body; an empty string is allowed.
	Description *string `json:"description"`
	DueDate     string  `json:"due_date,omitempty"`
	Status      string  `json:"status,omitempty"`
}

func (r CreateTodoRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Title == "" {
		errors["title"] = "Title is required"
	}
	if r.Description == nil {
		errors["description"] = "Description is required"
	}
	if r.Status != "" && !models.ValidStatus(r.Status) {
		errors["status"] = "Status must be one of TODO, DOING, DONE"
	}
	if r.DueDate != "" {
		if _, err := r.ParseDueDate(); err != nil {
			errors["due_date"] = "Due date must be a valid date"
		}
	}
	return errors
}

// ParseDueDate returns the due date as a time, or nil when none was given.
func (r CreateTodoRequest) ParseDueDate() (*time.Time, error) {
	if r.DueDate == "" {
		return nil, nil
	}
	var err error
	for _, layout := range dueDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, r.DueDate); err == nil {
			return &t, nil
		}
	}
	return nil, err
}

type AssignmentRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// Validate rejects the whole request if user_ids is missing or any element
// is not a positive integer. Nothing is persisted on failure.
func (r AssignmentRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.UserIDs == nil {
		errors["user_ids"] = "user_ids must be an array of positive integers"
		return errors
	}
	for _, id := range r.UserIDs {
		if id <= 0 {
			errors["user_ids"] = "user_ids must be an array of positive integers"
			return errors
		}
	}
	return errors
}

// UintIDs converts the validated ids for store calls.
func (r AssignmentRequest) UintIDs() []uint {
	ids := make([]uint, 0, len(r.UserIDs))
	for _, id := range r.UserIDs {
		ids = append(ids, uint(id))
	}
	return ids
}
