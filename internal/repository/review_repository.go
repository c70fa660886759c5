package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByUserAndCourse(userID, courseID uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error
	return &review, err
}

func (r *ReviewRepository) FindByCourse(courseID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.Where("course_id = ?", courseID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}
