package service

import (
	"errors"
	"math"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressService records per-lesson progress events and keeps the derived
// enrollment completion percentage consistent with them. The aggregate is
// always re-derived from a full scan of the course's lesson_progress rows,
// never incremented, so a recompute is safe to re-run after any interleaving.
type ProgressService struct {
	ProgressRepo   *repository.ProgressRepository
	LessonRepo     *repository.LessonRepository
	ModuleRepo     *repository.ModuleRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Certificates   *CertificateService
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	lessonRepo *repository.LessonRepository,
	moduleRepo *repository.ModuleRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	certificates *CertificateService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:   progressRepo,
		LessonRepo:     lessonRepo,
		ModuleRepo:     moduleRepo,
		EnrollmentRepo: enrollmentRepo,
		Certificates:   certificates,
	}
}

// RecordProgressRequest carries a partial update; nil fields are left as
// stored.
type RecordProgressRequest struct {
	Completed           *bool `json:"completed"`
	LastPositionSeconds *int  `json:"lastPositionSeconds"`
	TimeSpentSeconds    *int  `json:"timeSpentSeconds"`
}

// CompletionStats is the single aggregate view used by both the write-path
// recompute and enrollment detail reads.
type CompletionStats struct {
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	CompletionRate   int `json:"completionRate"`
}

// GetProgress returns the stored row, or a zero-valued default when the
// learner has not touched the lesson yet.
func (s *ProgressService) GetProgress(userID, lessonID uint) (*model.LessonProgress, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	p, err := s.ProgressRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.LessonProgress{UserID: userID, LessonID: lessonID}, nil
		}
		return nil, err
	}
	return p, nil
}

// RecordProgress upserts the (user, lesson) row and synchronously recomputes
// the owning enrollment's percentage before returning.
//
// CompletedAt latches the first time Completed flips to true and is never cleared
// here, even by a later completed=false write.
func (s *ProgressService) RecordProgress(userID, lessonID uint, req RecordProgressRequest) (*model.LessonProgress, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	p, err := s.ProgressRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p = &model.LessonProgress{UserID: userID, LessonID: lessonID}
	}

	if req.Completed != nil {
		if *req.Completed && !p.Completed && p.CompletedAt == nil {
			now := time.Now()
			p.CompletedAt = &now
		}
		p.Completed = *req.Completed
	}
	if req.LastPositionSeconds != nil {
		p.LastPositionSeconds = *req.LastPositionSeconds
	}
	if req.TimeSpentSeconds != nil {
		p.TimeSpentSeconds = *req.TimeSpentSeconds
	}

	if err := s.ProgressRepo.Save(p); err != nil {
		return nil, err
	}

	// The row is the source of truth; a broken module/course link degrades to
	// a skipped recompute rather than a failed write.
	module, err := s.ModuleRepo.FindByID(lesson.ModuleID)
	if err != nil {
		logger.Log.Warn("progress recorded but course could not be resolved, skipping recompute",
			zap.Uint("lessonId", lessonID), zap.Error(err))
		return p, nil
	}

	if err := s.RecomputeEnrollment(userID, module.CourseID); err != nil {
		return nil, err
	}

	return p, nil
}

// CourseCompletion derives the completion aggregate for one (user, course)
// pair from the two-level fan-out over modules and lessons. An empty course is
// defined as 0%, not a division error.
func (s *ProgressService) CourseCompletion(userID, courseID uint) (CompletionStats, error) {
	moduleIDs, err := s.ModuleRepo.IDsByCourse(courseID)
	if err != nil {
		return CompletionStats{}, err
	}
	lessonIDs, err := s.LessonRepo.IDsByModules(moduleIDs)
	if err != nil {
		return CompletionStats{}, err
	}

	stats := CompletionStats{TotalLessons: len(lessonIDs)}
	if stats.TotalLessons == 0 {
		return stats, nil
	}

	completed, err := s.ProgressRepo.CountCompleted(userID, lessonIDs)
	if err != nil {
		return CompletionStats{}, err
	}
	stats.CompletedLessons = int(completed)
	stats.CompletionRate = int(math.Round(100 * float64(completed) / float64(stats.TotalLessons)))
	return stats, nil
}

// RecomputeEnrollment refreshes the cached percentage on the enrollment and,
// on the first time 100 is reached, latches CompletedAt and hands the pair to
// the certificate issuer. Missing enrollment is a no-op: preview flows may
// record progress without one.
func (s *ProgressService) RecomputeEnrollment(userID, courseID uint) error {
	stats, err := s.CourseCompletion(userID, courseID)
	if err != nil {
		return err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.EnrollmentRepo.UpdateProgress(enrollment.ID, stats.CompletionRate); err != nil {
		return err
	}

	// One-way latch: lessons added after completion never un-complete a
	// course, and a later recompute below 100 leaves the timestamp alone.
	if stats.CompletionRate >= 100 && enrollment.CompletedAt == nil {
		if err := s.EnrollmentRepo.SetCompletedAt(enrollment.ID, time.Now()); err != nil {
			return err
		}
		if _, err := s.Certificates.MaybeIssue(userID, courseID); err != nil {
			// Certificate issuance is re-runnable on read and by the backfill
			// sweep; completion itself must not fail on it.
			logger.Log.Error("certificate issuance failed after completion",
				zap.Uint("userId", userID), zap.Uint("courseId", courseID), zap.Error(err))
		}
	}

	return nil
}
