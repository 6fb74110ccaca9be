package store

import (
	"context"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"gorm.io/gorm"
)

func (s *Store) CreateTodo(ctx context.Context, todo *models.Todo) error {
	return translate(s.db.WithContext(ctx).Create(todo).Error)
}

func (s *Store) TodosByProject(ctx context.Context, projectID uint) ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&todos).Error; err != nil {
		return nil, translate(err)
	}
	return todos, nil
}

// CreateAssignments inserts one assignment per user id inside a single
// transaction, so a failure partway through leaves nothing behind.
func (s *Store) CreateAssignments(ctx context.Context, todoID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	assignments := make([]models.Assignment, 0, len(userIDs))
	for _, userID := range userIDs {
		assignments = append(assignments, models.Assignment{
			UserID: userID,
			TodoID: todoID,
		})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assignments).Error
	})
	return translate(err)
}

func (s *Store) AssignmentsByTodo(ctx context.Context, todoID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.WithContext(ctx).Where("todo_id = ?", todoID).Find(&assignments).Error; err != nil {
		return nil, translate(err)
	}
	return assignments, nil
}

// DeleteAssignments removes the named users from the todo as one set
// operation. Ids that are not currently assigned are a no-op.
func (s *Store) DeleteAssignments(ctx context.Context, todoID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("todo_id = ? AND user_id IN ?", todoID, userIDs).
		Delete(&models.Assignment{}).Error
	return translate(err)
}
