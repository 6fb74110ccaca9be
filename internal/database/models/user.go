package models

type User struct {
	Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relationships. Deleting a user removes memberships and assignments but
	// keeps authored todos/comments with created_by nulled out.
	Memberships  []Membership `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Assignments  []Assignment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedTodos []Todo       `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	Comments     []Comment    `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string {
	return "users"
}
