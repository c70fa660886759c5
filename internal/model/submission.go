package model

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionGraded   SubmissionStatus = "graded"
	SubmissionResubmit SubmissionStatus = "resubmit"
)

// Submission is one row of a learner's submission history for an assignment.
// Re-submission after a resubmit request creates a new pending row; the
// newest row is the current one.
type Submission struct {
	BaseModel
	AssignmentID uint             `gorm:"index;not null" json:"assignmentId"`
	UserID       uint             `gorm:"index;not null" json:"userId"`
	FileURL      string           `gorm:"size:512;not null" json:"fileUrl"`
	Note         string           `gorm:"type:text" json:"note"`
	Status       SubmissionStatus `gorm:"size:20;default:'pending'" json:"status"`
	Score        *int             `json:"score"`
	Feedback     string           `gorm:"type:text" json:"feedback"`
	GradedAt     *time.Time       `json:"gradedAt"`
	GradedBy     *uint            `json:"gradedBy"`
}

func (Submission) TableName() string {
	return "submissions"
}

// IsGraded reports whether the submission carries a final grade.
func (s Submission) IsGraded() bool {
	return s.Status == SubmissionGraded
}
