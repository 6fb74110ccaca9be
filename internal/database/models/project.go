package models

type Project struct {
	Model
	Name           string `gorm:"not null" json:"name"`
	Description    string `json:"description"`
	OrganisationID uint   `gorm:"not null;index" json:"organisation_id"`

	// Relationships
	Todos []Todo `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}
