package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanActMatrix(t *testing.T) {
	env := newTestEnv(t)

	owner := Principal{ID: 1, Role: model.Instructor}
	other := Principal{ID: 2, Role: model.Instructor}
	student := Principal{ID: 3, Role: model.Student}
	admin := Principal{ID: 4, Role: model.Admin}
	contentAdmin := Principal{ID: 5, Role: model.ContentAdmin}

	course := seedCourse(t, env.db, owner.ID, model.CoursePublished)
	path, err := env.access.ResolveCoursePath(course.ID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		p       Principal
		action  Action
		wantErr error
	}{
		{"owner updates own course", owner, ActionUpdate, nil},
		{"owner creates under own course", owner, ActionCreate, nil},
		{"owner may not delete", owner, ActionDelete, util.ErrForbidden},
		{"other instructor may not update", other, ActionUpdate, util.ErrForbidden},
		{"other instructor may not create", other, ActionCreate, util.ErrForbidden},
		{"student may not update", student, ActionUpdate, util.ErrForbidden},
		{"student may not create", student, ActionCreate, util.ErrForbidden},
		{"admin may update", admin, ActionUpdate, nil},
		{"admin may delete", admin, ActionDelete, nil},
		{"content admin may update", contentAdmin, ActionUpdate, nil},
		{"content admin may delete", contentAdmin, ActionDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.access.CanAct(tt.p, tt.action, path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanActOnNestedContent(t *testing.T) {
	env := newTestEnv(t)

	owner := Principal{ID: 1, Role: model.Instructor}
	other := Principal{ID: 2, Role: model.Instructor}

	course := seedCourse(t, env.db, owner.ID, model.CoursePublished)
	module := seedModule(t, env.db, course.ID)
	lesson := seedLesson(t, env.db, module.ID)
	assignment := seedAssignment(t, env.db, lesson.ID, nil)

	// the walk reaches the owning course from any depth
	path, err := env.access.ResolveAssignmentPath(assignment.ID)
	require.NoError(t, err)
	require.Equal(t, course.ID, path.Course.ID)
	require.Equal(t, module.ID, path.Module.ID)
	require.Equal(t, lesson.ID, path.Lesson.ID)

	assert.NoError(t, env.access.CanAct(owner, ActionUpdate, path))
	assert.ErrorIs(t, env.access.CanAct(other, ActionUpdate, path), util.ErrForbidden)
	assert.ErrorIs(t, env.access.CanAct(owner, ActionDelete, path), util.ErrForbidden)
}

func TestResolvePathNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.access.ResolveCoursePath(999)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = env.access.ResolveLessonPath(999)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = env.access.ResolveAssignmentPath(999)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestResolvePathBrokenLinkIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	// lesson whose module does not exist: a broken chain must read as
	// NotFound, never Forbidden
	lesson := seedLesson(t, env.db, 12345)
	_, err := env.access.ResolveLessonPath(lesson.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestGuardOwnerOverride(t *testing.T) {
	instructor := Principal{ID: 7, Role: model.Instructor}
	admin := Principal{ID: 8, Role: model.Admin}

	assert.NoError(t, GuardOwnerOverride(instructor, 0), "absent field passes")
	assert.NoError(t, GuardOwnerOverride(instructor, 7), "own id passes")
	assert.ErrorIs(t, GuardOwnerOverride(instructor, 9), util.ErrForbidden)
	assert.NoError(t, GuardOwnerOverride(admin, 9), "admins may assign other owners")
}

func TestCanCreateCourse(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.access.CanCreateCourse(Principal{ID: 1, Role: model.Instructor}))
	assert.NoError(t, env.access.CanCreateCourse(Principal{ID: 2, Role: model.Admin}))
	assert.NoError(t, env.access.CanCreateCourse(Principal{ID: 3, Role: model.ContentAdmin}))
	assert.ErrorIs(t, env.access.CanCreateCourse(Principal{ID: 4, Role: model.Student}), util.ErrForbidden)
}
