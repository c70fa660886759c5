package model

import "time"

// swagger:model Certificate
type Certificate struct {
	BaseModel
	UserID          uint      `gorm:"uniqueIndex:idx_user_course_cert;not null" json:"userId"`
	CourseID        uint      `gorm:"uniqueIndex:idx_user_course_cert;not null" json:"courseId"`
	CertificateCode string    `gorm:"size:64;uniqueIndex;not null" json:"certificateCode"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
