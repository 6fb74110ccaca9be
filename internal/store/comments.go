package store

import (
	"context"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
)

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	return translate(s.db.WithContext(ctx).Create(comment).Error)
}

func (s *Store) CommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (s *Store) CommentsByTodo(ctx context.Context, todoID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("todo_id = ?", todoID).Find(&comments).Error; err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (s *Store) UpdateCommentContent(ctx context.Context, id uint, content string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
	return translate(err)
}

func (s *Store) DeleteComment(ctx context.Context, id uint) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Comment{}, id).Error)
}
