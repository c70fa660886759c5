package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(e *model.Enrollment) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error
	return &e, err
}

func (r *EnrollmentRepository) FindByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

// FindCompleted returns enrollments whose completion latch is set.
func (r *EnrollmentRepository) FindCompleted() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("completed_at IS NOT NULL").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) UpdateProgress(id uint, percentage int) error {
	return r.DB.Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("progress_percentage", percentage).
		Error
}

// SetCompletedAt writes the completion latch only when it is still unset.
func (r *EnrollmentRepository) SetCompletedAt(id uint, at time.Time) error {
	return r.DB.Model(&model.Enrollment{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("completed_at", at).
		Error
}

func (r *EnrollmentRepository) UpdateLastAccessedLesson(id, lessonID uint) error {
	return r.DB.Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("last_accessed_lesson_id", lessonID).
		Error
}
