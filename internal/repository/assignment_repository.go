package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(a *model.Assignment) error {
	return r.DB.Create(a).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AssignmentRepository) FindByLesson(lessonID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) IDsByLessons(lessonIDs []uint) ([]uint, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Model(&model.Assignment{}).Where("lesson_id IN ?", lessonIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *AssignmentRepository) Update(a *model.Assignment) error {
	return r.DB.Save(a).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}

func (r *AssignmentRepository) DeleteByLesson(lessonID uint) error {
	return r.DB.Where("lesson_id = ?", lessonID).Delete(&model.Assignment{}).Error
}
