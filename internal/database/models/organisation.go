package models

type Organisation struct {
	Model
	Name string `gorm:"not null" json:"name"`

	// Relationships
	Memberships []Membership `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Projects    []Project    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Organisation) TableName() string {
	return "organisations"
}
