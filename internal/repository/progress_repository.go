package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonProgress, error) {
	var p model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&p).Error
	return &p, err
}

// Save upserts a (user, lesson) progress row. The unique index on the pair
// keeps concurrent first writes from producing duplicates.
func (r *ProgressRepository) Save(p *model.LessonProgress) error {
	return r.DB.Save(p).Error
}

func (r *ProgressRepository) CountCompleted(userID uint, lessonIDs []uint) (int64, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ? AND completed = ?", userID, lessonIDs, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) FindByUserAndLessons(userID uint, lessonIDs []uint) ([]model.LessonProgress, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	var rows []model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).Find(&rows).Error
	return rows, err
}
