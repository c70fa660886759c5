package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProgressUpsertsSingleRow(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)

	_, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{TimeSpentSeconds: intPtr(30)})
	require.NoError(t, err)
	_, err = env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{TimeSpentSeconds: intPtr(90)})
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", 10, lesson.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	p, err := env.progress.GetProgress(10, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, p.TimeSpentSeconds)
}

func TestRecordProgressPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)

	_, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{
		TimeSpentSeconds:    intPtr(120),
		LastPositionSeconds: intPtr(45),
	})
	require.NoError(t, err)

	// nil fields leave stored values untouched
	p, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Equal(t, 120, p.TimeSpentSeconds)
	assert.Equal(t, 45, p.LastPositionSeconds)
}

func TestCompletedAtLatch(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)

	p, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, p.CompletedAt)
	firstCompletion := *p.CompletedAt

	// un-completing flips the flag but never clears the timestamp
	p, err = env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, p.Completed)
	require.NotNil(t, p.CompletedAt)
	assert.WithinDuration(t, firstCompletion, *p.CompletedAt, time.Second)

	// re-completing keeps the first-ever timestamp
	p, err = env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.WithinDuration(t, firstCompletion, *p.CompletedAt, time.Second)
}

func TestRecordProgressMissingLesson(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.progress.RecordProgress(10, 999, RecordProgressRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestGetProgressDefaultsToZeroRow(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)

	p, err := env.progress.GetProgress(10, lesson.ID)
	require.NoError(t, err)
	assert.False(t, p.Completed)
	assert.Zero(t, p.TimeSpentSeconds)
	assert.Nil(t, p.CompletedAt)
}

func TestCourseCompletionEmptyCourse(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)

	stats, err := env.progress.CourseCompletion(10, course.ID)
	require.NoError(t, err)
	assert.Equal(t, CompletionStats{}, stats)
}

func TestRecomputeEnrollmentPercentage(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	moduleA := seedModule(t, env.db, course.ID)
	moduleB := seedModule(t, env.db, course.ID)
	lessonA := seedLesson(t, env.db, moduleA.ID)
	lessonB := seedLesson(t, env.db, moduleB.ID)
	enrollment := seedEnrollment(t, env.db, 10, course.ID)

	_, err := env.progress.RecordProgress(10, lessonA.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)

	var got model.Enrollment
	require.NoError(t, env.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, 50, got.ProgressPercentage)
	assert.Nil(t, got.CompletedAt)

	_, err = env.progress.RecordProgress(10, lessonB.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, env.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, 100, got.ProgressPercentage)
	require.NotNil(t, got.CompletedAt)

	// completion hands the pair to the certificate issuer
	cert, err := env.certificate.MaybeIssue(10, course.ID)
	require.NoError(t, err)
	require.NotNil(t, cert)
}

func TestRecomputeWithoutEnrollmentIsNoop(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)

	// progress rows are valid without an enrollment; nothing to refresh
	_, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&model.Enrollment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLessonAddedAfterCompletionKeepsLatch(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)
	enrollment := seedEnrollment(t, env.db, 10, course.ID)

	_, err := env.progress.RecordProgress(10, lesson.ID, RecordProgressRequest{Completed: boolPtr(true)})
	require.NoError(t, err)

	var got model.Enrollment
	require.NoError(t, env.db.First(&got, enrollment.ID).Error)
	require.NotNil(t, got.CompletedAt)
	latched := *got.CompletedAt

	// a lesson added later drops the percentage but never un-completes
	seedLesson(t, env.db, module.ID)
	require.NoError(t, env.progress.RecomputeEnrollment(10, course.ID))

	require.NoError(t, env.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, 50, got.ProgressPercentage)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, latched, *got.CompletedAt, time.Second)
}
