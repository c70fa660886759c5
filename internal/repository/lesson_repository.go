package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) FindByModule(moduleID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("module_id = ?", moduleID).Order("order_index ASC, id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) IDsByModules(moduleIDs []uint) ([]uint, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Model(&model.Lesson{}).Where("module_id IN ?", moduleIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *LessonRepository) DeleteByModule(moduleID uint) error {
	return r.DB.Where("module_id = ?", moduleID).Delete(&model.Lesson{}).Error
}
