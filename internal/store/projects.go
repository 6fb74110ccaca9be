package store

import (
	"context"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
)

func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	return translate(s.db.WithContext(ctx).Create(project).Error)
}

func (s *Store) ProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (s *Store) ProjectsByOrganisation(ctx context.Context, orgID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Where("organisation_id = ?", orgID).Find(&projects).Error; err != nil {
		return nil, translate(err)
	}
	return projects, nil
}
