package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	Progress       *ProgressService
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	progress *ProgressService,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		Progress:       progress,
	}
}

// EnrollmentDetail nests the live aggregate next to the stored enrollment.
// Both come from the same CourseCompletion derivation as the write path.
type EnrollmentDetail struct {
	Enrollment *model.Enrollment `json:"enrollment"`
	Stats      CompletionStats   `json:"stats"`
}

// Enroll registers a user in a published course, one enrollment per pair.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if course.Status != model.CoursePublished {
		return nil, util.ErrCourseNotPublished
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// GetDetail returns the enrollment with the aggregate recomputed on read.
// Only the owner or an admin may see it.
func (s *EnrollmentService) GetDetail(p Principal, enrollmentID uint) (*EnrollmentDetail, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if enrollment.UserID != p.ID && p.Role != model.Admin && p.Role != model.ContentAdmin {
		return nil, util.ErrForbidden
	}

	stats, err := s.Progress.CourseCompletion(enrollment.UserID, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	return &EnrollmentDetail{Enrollment: enrollment, Stats: stats}, nil
}

func (s *EnrollmentService) ListForUser(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByUser(userID)
}

// TouchLastAccessed records the navigation hint; errors are surfaced but the
// hint is never authoritative.
func (s *EnrollmentService) TouchLastAccessed(userID, courseID, lessonID uint) error {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.EnrollmentRepo.UpdateLastAccessedLesson(enrollment.ID, lessonID)
}
