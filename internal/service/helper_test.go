package service

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type testEnv struct {
	db          *gorm.DB
	access      *AccessService
	progress    *ProgressService
	enrollment  *EnrollmentService
	submission  *SubmissionService
	certificate *CertificateService
	course      *CourseService
	content     *ContentService
	review      *ReviewService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with a shared cache keeps all pooled
	// connections on the same schema; the test name keeps tests isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	access := NewAccessService(courseRepo, moduleRepo, lessonRepo, assignmentRepo)
	certificate := NewCertificateService(certificateRepo, enrollmentRepo)
	progress := NewProgressService(progressRepo, lessonRepo, moduleRepo, enrollmentRepo, certificate)
	enrollment := NewEnrollmentService(enrollmentRepo, courseRepo, progress)
	content := NewContentService(moduleRepo, lessonRepo, assignmentRepo, access)
	course := NewCourseService(courseRepo, access, nil)
	submission := NewSubmissionService(submissionRepo, access)
	review := NewReviewService(reviewRepo, enrollmentRepo, courseRepo)

	return &testEnv{
		db:          db,
		access:      access,
		progress:    progress,
		enrollment:  enrollment,
		submission:  submission,
		certificate: certificate,
		course:      course,
		content:     content,
		review:      review,
	}
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, status model.CourseStatus) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:        "Seeded Course",
		Slug:         fmt.Sprintf("seeded-course-%d", time.Now().UnixNano()),
		InstructorID: instructorID,
		Status:       status,
		Level:        model.LevelBeginner,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint) *model.CourseModule {
	t.Helper()
	m := &model.CourseModule{CourseID: courseID, Title: "Module"}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedLesson(t *testing.T, db *gorm.DB, moduleID uint) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{ModuleID: moduleID, Title: "Lesson"}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func seedAssignment(t *testing.T, db *gorm.DB, lessonID uint, maxScore *int) *model.Assignment {
	t.Helper()
	a := &model.Assignment{LessonID: lessonID, Title: "Assignment", MaxScore: maxScore}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) *model.Enrollment {
	t.Helper()
	e := &model.Enrollment{UserID: userID, CourseID: courseID, EnrolledAt: time.Now()}
	require.NoError(t, db.Create(e).Error)
	return e
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }
