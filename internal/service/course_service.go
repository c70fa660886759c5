package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "catalog:published"
	catalogCacheTTL = 5 * time.Minute
)

// CourseService owns the course lifecycle: creation with slug derivation,
// owner/admin updates, publish/archive, and the cached public catalog.
type CourseService struct {
	CourseRepo *repository.CourseRepository
	Access     *AccessService
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, access *AccessService, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Access:     access,
		Redis:      rdb,
	}
}

type CreateCourseRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	Level       model.CourseLevel `json:"level"`
	// InstructorID may only be set by admins; anyone else setting it to a
	// different principal is rejected before authorization proper.
	InstructorID uint `json:"instructorId"`
}

type UpdateCourseRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Price        *int64              `json:"price"`
	Level        *model.CourseLevel  `json:"level"`
	Status       *model.CourseStatus `json:"status"`
	InstructorID uint                `json:"instructorId"`
}

func (s *CourseService) Create(p Principal, req CreateCourseRequest) (*model.Course, error) {
	if err := GuardOwnerOverride(p, req.InstructorID); err != nil {
		return nil, err
	}
	if err := s.Access.CanCreateCourse(p); err != nil {
		return nil, err
	}

	instructorID := p.ID
	if req.InstructorID != 0 {
		instructorID = req.InstructorID
	}

	slug, err := util.UniqueSlug(util.Slugify(req.Title), s.CourseRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	level := req.Level
	if level == "" {
		level = model.LevelBeginner
	}

	course := &model.Course{
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		InstructorID: instructorID,
		Status:       model.CourseDraft,
		Price:        req.Price,
		Level:        level,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return course, nil
}

func (s *CourseService) Update(p Principal, courseID uint, req UpdateCourseRequest) (*model.Course, error) {
	if err := GuardOwnerOverride(p, req.InstructorID); err != nil {
		return nil, err
	}

	path, err := s.Access.ResolveCoursePath(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionUpdate, path); err != nil {
		return nil, err
	}

	course := path.Course
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.InstructorID != 0 {
		course.InstructorID = req.InstructorID
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return course, nil
}

// Delete removes the course and cascades one level down; deeper cascading is
// handled by the content service.
func (s *CourseService) Delete(p Principal, courseID uint, content *ContentService) error {
	path, err := s.Access.ResolveCoursePath(courseID)
	if err != nil {
		return err
	}
	if err := s.Access.CanAct(p, ActionDelete, path); err != nil {
		return err
	}

	if err := content.deleteCourseTree(courseID); err != nil {
		return err
	}
	if err := s.CourseRepo.Delete(courseID); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

func (s *CourseService) Get(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetBySlug serves the storefront's pretty-URL course pages.
func (s *CourseService) GetBySlug(slug string) (*model.Course, error) {
	course, err := s.CourseRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// Catalog lists published courses, served from redis when warm.
func (s *CourseService) Catalog(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var courses []model.Course
			if err := json.Unmarshal(cached, &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindPublished()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CourseService) ListForInstructor(instructorID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByInstructor(instructorID)
}

func (s *CourseService) invalidateCatalog() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
