package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	env        *testEnv
	owner      Principal
	student    Principal
	assignment *model.Assignment
}

func newSubmissionFixture(t *testing.T, maxScore *int) *submissionFixture {
	env := newTestEnv(t)
	owner := Principal{ID: 1, Role: model.Instructor}
	course := seedCourse(t, env.db, owner.ID, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)
	assignment := seedAssignment(t, env.db, lesson.ID, maxScore)

	return &submissionFixture{
		env:        env,
		owner:      owner,
		student:    Principal{ID: 10, Role: model.Student},
		assignment: assignment,
	}
}

func TestSubmitCreatesPending(t *testing.T) {
	f := newSubmissionFixture(t, nil)

	sub, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/essay.pdf"})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionPending, sub.Status)
	assert.Nil(t, sub.Score)

	_, err = f.env.submission.Submit(f.student, 999, SubmitRequest{FileURL: "https://files/essay.pdf"})
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{})
	assert.ErrorIs(t, err, util.ErrFileURLRequired)
}

func TestSubmitWhilePendingRejected(t *testing.T) {
	f := newSubmissionFixture(t, nil)

	_, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v1.pdf"})
	require.NoError(t, err)

	_, err = f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v2.pdf"})
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
}

func TestGradeFlow(t *testing.T) {
	f := newSubmissionFixture(t, intPtr(100))

	sub, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v1.pdf"})
	require.NoError(t, err)

	graded, err := f.env.submission.Grade(f.owner, sub.ID, GradeRequest{Score: 85, Feedback: "solid work"})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionGraded, graded.Status)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 85, *graded.Score)
	require.NotNil(t, graded.GradedBy)
	assert.Equal(t, f.owner.ID, *graded.GradedBy)
	assert.NotNil(t, graded.GradedAt)

	// graded is terminal: no second grade, no new submission
	_, err = f.env.submission.Grade(f.owner, sub.ID, GradeRequest{Score: 90})
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
	_, err = f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v2.pdf"})
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
}

func TestGradeScoreBounds(t *testing.T) {
	f := newSubmissionFixture(t, intPtr(50))

	sub, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v1.pdf"})
	require.NoError(t, err)

	_, err = f.env.submission.Grade(f.owner, sub.ID, GradeRequest{Score: -1})
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = f.env.submission.Grade(f.owner, sub.ID, GradeRequest{Score: 51})
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = f.env.submission.Grade(f.owner, sub.ID, GradeRequest{Score: 50})
	assert.NoError(t, err)
}

func TestGradeAuthorization(t *testing.T) {
	f := newSubmissionFixture(t, nil)

	sub, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v1.pdf"})
	require.NoError(t, err)

	_, err = f.env.submission.Grade(Principal{ID: 2, Role: model.Instructor}, sub.ID, GradeRequest{Score: 10})
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = f.env.submission.Grade(f.student, sub.ID, GradeRequest{Score: 10})
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = f.env.submission.Grade(Principal{ID: 99, Role: model.Admin}, sub.ID, GradeRequest{Score: 10})
	assert.NoError(t, err)
}

func TestResubmissionCycle(t *testing.T) {
	f := newSubmissionFixture(t, nil)

	first, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v1.pdf"})
	require.NoError(t, err)

	_, err = f.env.submission.RequestResubmission(f.owner, first.ID, "")
	assert.ErrorIs(t, err, util.ErrFeedbackRequired)

	back, err := f.env.submission.RequestResubmission(f.owner, first.ID, "please add sources")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionResubmit, back.Status)
	assert.Nil(t, back.Score)
	assert.Equal(t, "please add sources", back.Feedback)

	// the resubmit row stays as history; the fresh submission is a new pending row
	second, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/v2.pdf"})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionPending, second.Status)
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, f.env.db.Model(&model.Submission{}).
		Where("assignment_id = ? AND user_id = ?", f.assignment.ID, f.student.ID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)

	// a resubmit row is no longer gradeable
	_, err = f.env.submission.Grade(f.owner, first.ID, GradeRequest{Score: 10})
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	_, err = f.env.submission.Grade(f.owner, second.ID, GradeRequest{Score: 10})
	assert.NoError(t, err)
}

func TestListRoleScoping(t *testing.T) {
	f := newSubmissionFixture(t, nil)

	// second course owned by someone else with its own submission
	otherOwner := Principal{ID: 2, Role: model.Instructor}
	otherCourse := seedCourse(t, f.env.db, otherOwner.ID, model.CoursePublished)
	otherModule := seedModule(t, f.env.db, otherCourse.ID)
	otherLesson := seedLesson(t, f.env.db, otherModule.ID)
	otherAssignment := seedAssignment(t, f.env.db, otherLesson.ID, nil)

	_, err := f.env.submission.Submit(f.student, f.assignment.ID, SubmitRequest{FileURL: "https://files/a.pdf"})
	require.NoError(t, err)
	_, err = f.env.submission.Submit(Principal{ID: 11, Role: model.Student}, otherAssignment.ID, SubmitRequest{FileURL: "https://files/b.pdf"})
	require.NoError(t, err)

	all, err := f.env.submission.List(Principal{ID: 99, Role: model.Admin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.env.submission.List(f.student)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	owned, err := f.env.submission.List(f.owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, f.assignment.ID, owned[0].AssignmentID)

	// per-assignment listing follows the same scoping
	_, err = f.env.submission.ListForAssignment(f.owner, otherAssignment.ID)
	assert.ErrorIs(t, err, util.ErrForbidden)

	own, err := f.env.submission.ListForAssignment(f.student, f.assignment.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}
