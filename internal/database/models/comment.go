package models

type Comment struct {
	Model
	Content   string `gorm:"not null" json:"content"`
	TodoID    uint   `gorm:"not null;index" json:"todo_id"`
	CreatedBy *uint  `json:"created_by"`
}

func (Comment) TableName() string {
	return "comments"
}
