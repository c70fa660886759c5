package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	LessonID    uint       `gorm:"index;not null" json:"lessonId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    *int       `json:"maxScore"`
}

func (Assignment) TableName() string {
	return "assignments"
}
