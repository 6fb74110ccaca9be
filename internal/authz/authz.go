// Package authz holds the authorization predicates. Every check is a fresh
// read against the store, never cached: a revoked membership must take effect
// on the very next request.
package authz

import (
	"context"
	"errors"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// IsMember reports whether a membership row exists for the pair.
func (s *Service) IsMember(ctx context.Context, orgID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("organisation_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsAdmin reports whether the user holds the ADMIN role in the organisation.
func (s *Service) IsAdmin(ctx context.Context, orgID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("organisation_id = ? AND user_id = ? AND role = ?", orgID, userID, models.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsMemberOfProjectOrg resolves the project's organisation and checks
// membership. A missing project is simply "not a member", not an error.
func (s *Service) IsMemberOfProjectOrg(ctx context.Context, projectID, userID uint) (bool, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.IsMember(ctx, project.OrganisationID, userID)
}
