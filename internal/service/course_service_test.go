package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseSlugDerivation(t *testing.T) {
	env := newTestEnv(t)
	instructor := Principal{ID: 1, Role: model.Instructor}

	first, err := env.course.Create(instructor, CreateCourseRequest{Title: "Go Basics!"})
	require.NoError(t, err)
	assert.Equal(t, "go-basics", first.Slug)
	assert.Equal(t, model.CourseDraft, first.Status)
	assert.Equal(t, instructor.ID, first.InstructorID)

	second, err := env.course.Create(instructor, CreateCourseRequest{Title: "Go Basics"})
	require.NoError(t, err)
	assert.Equal(t, "go-basics-2", second.Slug)

	third, err := env.course.Create(instructor, CreateCourseRequest{Title: "go basics"})
	require.NoError(t, err)
	assert.Equal(t, "go-basics-3", third.Slug)
}

func TestCreateCourseAuthorization(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.course.Create(Principal{ID: 10, Role: model.Student}, CreateCourseRequest{Title: "Nope"})
	assert.ErrorIs(t, err, util.ErrForbidden)

	// an instructor may not create a course for somebody else
	_, err = env.course.Create(Principal{ID: 1, Role: model.Instructor}, CreateCourseRequest{Title: "Forged", InstructorID: 2})
	assert.ErrorIs(t, err, util.ErrForbidden)

	// an admin may
	course, err := env.course.Create(Principal{ID: 99, Role: model.Admin}, CreateCourseRequest{Title: "Assigned", InstructorID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(2), course.InstructorID)
}

func TestUpdateCourseOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := Principal{ID: 1, Role: model.Instructor}
	course := seedCourse(t, env.db, owner.ID, model.CourseDraft)

	published := model.CoursePublished
	updated, err := env.course.Update(owner, course.ID, UpdateCourseRequest{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, model.CoursePublished, updated.Status)

	_, err = env.course.Update(Principal{ID: 2, Role: model.Instructor}, course.ID, UpdateCourseRequest{Status: &published})
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = env.course.Update(owner, 999, UpdateCourseRequest{Status: &published})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestDeleteCourseCascades(t *testing.T) {
	env := newTestEnv(t)
	owner := Principal{ID: 1, Role: model.Instructor}
	course := seedCourse(t, env.db, owner.ID, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)
	seedAssignment(t, env.db, lesson.ID, nil)

	// instructors never delete, not even their own
	err := env.course.Delete(owner, course.ID, env.content)
	assert.ErrorIs(t, err, util.ErrForbidden)

	require.NoError(t, env.course.Delete(Principal{ID: 99, Role: model.Admin}, course.ID, env.content))

	for _, m := range []interface{}{&model.Course{}, &model.CourseModule{}, &model.Lesson{}, &model.Assignment{}} {
		var count int64
		require.NoError(t, env.db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestCatalogListsPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	seedCourse(t, env.db, 1, model.CourseDraft)
	seedCourse(t, env.db, 1, model.CourseArchived)
	published := seedCourse(t, env.db, 1, model.CoursePublished)

	courses, err := env.course.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, published.ID, courses[0].ID)
}

func TestContentMutationsGoThroughAccess(t *testing.T) {
	env := newTestEnv(t)
	owner := Principal{ID: 1, Role: model.Instructor}
	other := Principal{ID: 2, Role: model.Instructor}
	course := seedCourse(t, env.db, owner.ID, model.CoursePublished)

	m, err := env.content.CreateModule(owner, course.ID, ModuleRequest{Title: "Week 1"})
	require.NoError(t, err)

	_, err = env.content.CreateModule(other, course.ID, ModuleRequest{Title: "Hijack"})
	assert.ErrorIs(t, err, util.ErrForbidden)

	lesson, err := env.content.CreateLesson(owner, m.ID, LessonRequest{Title: "Intro"})
	require.NoError(t, err)

	_, err = env.content.CreateAssignment(other, lesson.ID, AssignmentRequest{Title: "Essay"})
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = env.content.CreateAssignment(owner, lesson.ID, AssignmentRequest{Title: "Essay", MaxScore: intPtr(100)})
	require.NoError(t, err)

	// deletion is admin territory
	assert.ErrorIs(t, env.content.DeleteModule(owner, m.ID), util.ErrForbidden)
	assert.NoError(t, env.content.DeleteModule(Principal{ID: 99, Role: model.Admin}, m.ID))

	var lessonCount int64
	require.NoError(t, env.db.Model(&model.Lesson{}).Count(&lessonCount).Error)
	assert.Zero(t, lessonCount, "module delete cascades to lessons")
}

func TestReviewRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env.db, 1, model.CoursePublished)
	student := Principal{ID: 10, Role: model.Student}

	_, err := env.review.Create(student, course.ID, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	seedEnrollment(t, env.db, student.ID, course.ID)

	_, err = env.review.Create(student, course.ID, ReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, util.ErrInvalidRating)
	_, err = env.review.Create(student, course.ID, ReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, util.ErrInvalidRating)

	review, err := env.review.Create(student, course.ID, ReviewRequest{Rating: 4, Comment: "good pace"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	_, err = env.review.Create(student, course.ID, ReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, util.ErrAlreadyReviewed)

	reviews, err := env.review.ListForCourse(course.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
