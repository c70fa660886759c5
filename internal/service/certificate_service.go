package service

import (
	"errors"
	"strings"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CertificateService issues course completion certificates. Issuance is
// idempotent on (user, course) and re-runnable: it fires from the completion
// pipeline, again on read, and from the periodic backfill sweep.
type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
	EnrollmentRepo  *repository.EnrollmentRepository
}

func NewCertificateService(
	certificateRepo *repository.CertificateRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *CertificateService {
	return &CertificateService{
		CertificateRepo: certificateRepo,
		EnrollmentRepo:  enrollmentRepo,
	}
}

// MaybeIssue returns the existing certificate for the pair, issues one when
// the enrollment's completion latch is set, and returns nil when the learner
// has not completed the course.
func (s *CertificateService) MaybeIssue(userID, courseID uint) (*model.Certificate, error) {
	cert, err := s.CertificateRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return cert, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if enrollment.CompletedAt == nil {
		return nil, nil
	}

	cert = &model.Certificate{
		UserID:          userID,
		CourseID:        courseID,
		CertificateCode: newCertificateCode(),
		IssuedAt:        time.Now(),
	}
	if err := s.CertificateRepo.Create(cert); err != nil {
		// A concurrent issuance may have won the unique index race; the
		// existing row is the answer either way.
		if existing, ferr := s.CertificateRepo.FindByUserAndCourse(userID, courseID); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) ListForUser(userID uint) ([]model.Certificate, error) {
	return s.CertificateRepo.FindByUser(userID)
}

// BackfillCompleted issues certificates for completed enrollments that missed
// the in-request pipeline (e.g. a crash between the latch write and the
// issuance call). Runs from the app's background ticker.
func (s *CertificateService) BackfillCompleted() error {
	enrollments, err := s.EnrollmentRepo.FindCompleted()
	if err != nil {
		return err
	}
	for _, e := range enrollments {
		if _, err := s.MaybeIssue(e.UserID, e.CourseID); err != nil {
			logger.Log.Error("certificate backfill failed",
				zap.Uint("userId", e.UserID), zap.Uint("courseId", e.CourseID), zap.Error(err))
		}
	}
	return nil
}

func newCertificateCode() string {
	return "CERT-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:20]
}
