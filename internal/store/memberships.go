package store

import (
	"context"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
)

func (s *Store) MembersOfOrganisation(ctx context.Context, orgID uint) ([]models.Membership, error) {
	var members []models.Membership
	if err := s.db.WithContext(ctx).Where("organisation_id = ?", orgID).Find(&members).Error; err != nil {
		return nil, translate(err)
	}
	return members, nil
}

func (s *Store) AddMember(ctx context.Context, membership *models.Membership) error {
	return translate(s.db.WithContext(ctx).Create(membership).Error)
}

func (s *Store) UpdateMemberRole(ctx context.Context, orgID, userID uint, role string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("organisation_id = ? AND user_id = ?", orgID, userID).
		Update("role", role).Error
	return translate(err)
}

func (s *Store) RemoveMember(ctx context.Context, orgID, userID uint) error {
	err := s.db.WithContext(ctx).
		Where("organisation_id = ? AND user_id = ?", orgID, userID).
		Delete(&models.Membership{}).Error
	return translate(err)
}
