package model

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	ModuleID        uint         `gorm:"index;not null" json:"moduleId"`
	Title           string       `gorm:"size:255;not null" json:"title"`
	Content         string       `gorm:"type:text" json:"content"`
	OrderIndex      int          `gorm:"default:0" json:"orderIndex"`
	IsFree          bool         `gorm:"default:false" json:"isFree"`
	DurationMinutes int          `gorm:"default:0" json:"durationMinutes"`
	Attachments     []Attachment `gorm:"serializer:json;type:text" json:"attachments"`
}

func (Lesson) TableName() string {
	return "lessons"
}
