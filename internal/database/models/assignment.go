package models

// Assignment links a user to a todo. Existence is the fact, it carries no
// attributes of its own.
type Assignment struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	TodoID uint `gorm:"primaryKey" json:"todo_id"`
}

func (Assignment) TableName() string {
	return "todo_assignment"
}
