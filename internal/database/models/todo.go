package models

import "time"

const (
	StatusTodo  = "TODO"
	StatusDoing = "DOING"
	StatusDone  = "DONE"
)

// ValidStatus reports whether s is one of the todo status values.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusDoing || s == StatusDone
}

type Todo struct {
	Model
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	Status      string     `gorm:"not null;default:'TODO'" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   *uint      `json:"created_by"`

	// Relationships
	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Todo) TableName() string {
	return "todos"
}
