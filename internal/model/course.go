package model

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string       `gorm:"size:255;not null" json:"title"`
	Slug         string       `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description  string       `gorm:"type:text" json:"description"`
	InstructorID uint         `gorm:"index;not null" json:"instructorId"`
	Status       CourseStatus `gorm:"size:20;default:'draft'" json:"status"`
	// Price is in the smallest currency unit; pricing math lives in the storefront.
	Price int64       `gorm:"default:0" json:"price"`
	Level CourseLevel `gorm:"size:20;default:'beginner'" json:"level"`
}

func (Course) TableName() string {
	return "courses"
}
