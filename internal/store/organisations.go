package store

import (
	"context"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"gorm.io/gorm"
)

// CreateOrganisation inserts the organisation and the creator's ADMIN
// membership in one transaction. If either insert fails, neither persists.
func (s *Store) CreateOrganisation(ctx context.Context, name string, creatorID uint) (*models.Organisation, error) {
	org := models.Organisation{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		membership := models.Membership{
			UserID:         creatorID,
			OrganisationID: org.ID,
			Role:           models.RoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

// OrganisationsForUser returns the organisations the user is a member of.
func (s *Store) OrganisationsForUser(ctx context.Context, userID uint) ([]models.Organisation, error) {
	var orgs []models.Organisation
	memberOf := s.db.Model(&models.Membership{}).
		Select("organisation_id").
		Where("user_id = ?", userID)
	if err := s.db.WithContext(ctx).Where("id IN (?)", memberOf).Find(&orgs).Error; err != nil {
		return nil, translate(err)
	}
	return orgs, nil
}

func (s *Store) OrganisationByID(ctx context.Context, id uint) (*models.Organisation, error) {
	var org models.Organisation
	if err := s.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *Store) UpdateOrganisationName(ctx context.Context, id uint, name string) (*models.Organisation, error) {
	var org models.Organisation
	if err := s.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.WithContext(ctx).Model(&org).Update("name", name).Error; err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

// DeleteOrganisation removes the organisation; memberships, projects, todos,
// assignments and comments go with it through the schema's cascade rules.
func (s *Store) DeleteOrganisation(ctx context.Context, id uint) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Organisation{}, id).Error)
}
