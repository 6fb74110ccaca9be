package models

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Membership links a user to an organisation with a role. At most one row
// per (user, organisation) pair.
type Membership struct {
	UserID         uint   `gorm:"primaryKey" json:"user_id"`
	OrganisationID uint   `gorm:"primaryKey" json:"organisation_id"`
	Role           string `gorm:"not null" json:"role"`
}

func (Membership) TableName() string {
	return "user_organisation"
}
