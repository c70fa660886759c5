package model

import "time"

// LessonProgress is the per-learner, per-lesson source of truth for course
// completion aggregation.
//
// Completed reflects the current state and may move back to false.
// CompletedAt records the first-ever completion and is never cleared, so a
// row can legitimately carry completed=false with a non-null CompletedAt.
type LessonProgress struct {
	BaseModel
	UserID              uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID            uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	Completed           bool       `gorm:"default:false" json:"completed"`
	TimeSpentSeconds    int        `gorm:"default:0" json:"timeSpentSeconds"`
	LastPositionSeconds int        `gorm:"default:0" json:"lastPositionSeconds"`
	CompletedAt         *time.Time `json:"completedAt"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
