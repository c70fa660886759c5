package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(s *model.Submission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.First(&s, id).Error
	return &s, err
}

// CurrentForUser returns the newest submission of the user for the
// assignment. Submissions are kept as history; the newest row is current.
func (r *SubmissionRepository) CurrentForUser(assignmentID, userID uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Order("created_at DESC, id DESC").
		First(&s).Error
	return &s, err
}

func (r *SubmissionRepository) FindByUser(userID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindByAssignment(assignmentID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("created_at DESC, id DESC").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindByAssignments(assignmentIDs []uint) ([]model.Submission, error) {
	if len(assignmentIDs) == 0 {
		return nil, nil
	}
	var subs []model.Submission
	err := r.DB.Where("assignment_id IN ?", assignmentIDs).Order("created_at DESC, id DESC").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindAll() ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Order("created_at DESC, id DESC").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) Update(s *model.Submission) error {
	return r.DB.Save(s).Error
}
