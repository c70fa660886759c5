package model

import "time"

// Enrollment is a learner's registration in a course. ProgressPercentage is a
// cached aggregate derived from lesson_progress rows; CompletedAt is a one-way
// latch set the first time the percentage reaches 100.
type Enrollment struct {
	BaseModel
	UserID             uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID           uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	EnrolledAt         time.Time  `json:"enrolledAt"`
	CompletedAt        *time.Time `json:"completedAt"`
	ProgressPercentage int        `gorm:"default:0" json:"progressPercentage"`
	// Navigation hint only, not authoritative.
	LastAccessedLessonID *uint `json:"lastAccessedLessonId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
