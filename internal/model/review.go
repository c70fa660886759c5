package model

// Review is a learner's rating of a course, one per (user, course), and only
// for courses the user is enrolled in.
type Review struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex:idx_user_course_review;not null" json:"userId"`
	CourseID uint   `gorm:"uniqueIndex:idx_user_course_review;not null" json:"courseId"`
	Rating   int    `gorm:"not null" json:"rating"`
	Comment  string `gorm:"type:text" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}
