package model

// CourseModule groups lessons inside a course. OrderIndex is the intended
// ordering key within a course; storage does not enforce its uniqueness.
type CourseModule struct {
	BaseModel
	CourseID   uint   `gorm:"index;not null" json:"courseId"`
	Title      string `gorm:"size:255;not null" json:"title"`
	OrderIndex int    `gorm:"default:0" json:"orderIndex"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
