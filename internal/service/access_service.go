package service

import (
	"errors"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// Action is a mutation kind evaluated against a resource path.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Principal is the already-authenticated caller. Credential issuance lives
// outside this service; controllers build a Principal from JWT claims.
type Principal struct {
	ID   uint
	Role model.UserRole
}

// ResourcePath is a resolved chain from course down to module, lesson and
// assignment. Course is always set; the deeper links are nil above the
// target's depth. Authorization
// decisions are pure functions over this struct, so the repository walk
// happens exactly once per request.
type ResourcePath struct {
	Course     *model.Course
	Module     *model.CourseModule
	Lesson     *model.Lesson
	Assignment *model.Assignment
}

// AccessService resolves ownership paths and evaluates the role matrix for
// every mutation of course content.
type AccessService struct {
	CourseRepo     *repository.CourseRepository
	ModuleRepo     *repository.ModuleRepository
	LessonRepo     *repository.LessonRepository
	AssignmentRepo *repository.AssignmentRepository
}

func NewAccessService(
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	assignmentRepo *repository.AssignmentRepository,
) *AccessService {
	return &AccessService{
		CourseRepo:     courseRepo,
		ModuleRepo:     moduleRepo,
		LessonRepo:     lessonRepo,
		AssignmentRepo: assignmentRepo,
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}

// ResolveCoursePath fetches the course. A broken link is NotFound, never
// Forbidden.
func (s *AccessService) ResolveCoursePath(courseID uint) (*ResourcePath, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &ResourcePath{Course: course}, nil
}

func (s *AccessService) ResolveModulePath(moduleID uint) (*ResourcePath, error) {
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	path, err := s.ResolveCoursePath(module.CourseID)
	if err != nil {
		return nil, err
	}
	path.Module = module
	return path, nil
}

func (s *AccessService) ResolveLessonPath(lessonID uint) (*ResourcePath, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	path, err := s.ResolveModulePath(lesson.ModuleID)
	if err != nil {
		return nil, err
	}
	path.Lesson = lesson
	return path, nil
}

func (s *AccessService) ResolveAssignmentPath(assignmentID uint) (*ResourcePath, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	path, err := s.ResolveLessonPath(assignment.LessonID)
	if err != nil {
		return nil, err
	}
	path.Assignment = assignment
	return path, nil
}

// CanAct decides whether the principal may perform the action on the deepest
// resource of the path. Pure over the fetched path: no I/O.
//
// Matrix: admin and content_admin may do anything. An instructor may create
// and update content under courses they own and update the course itself,
// but never delete anything. Students never mutate content.
func (s *AccessService) CanAct(p Principal, action Action, path *ResourcePath) error {
	if path == nil || path.Course == nil {
		return util.ErrNotFound
	}

	switch p.Role {
	case model.Admin, model.ContentAdmin:
		return nil
	case model.Instructor:
		if action == ActionDelete {
			return util.ErrForbidden
		}
		if path.Course.InstructorID != p.ID {
			return util.ErrForbidden
		}
		return nil
	default:
		return util.ErrForbidden
	}
}

// CanCreateCourse gates course creation. Instructors create courses for
// themselves; the owner override guard catches forged instructor ids before
// this is reached.
func (s *AccessService) CanCreateCourse(p Principal) error {
	switch p.Role {
	case model.Admin, model.ContentAdmin, model.Instructor:
		return nil
	default:
		return util.ErrForbidden
	}
}

// GuardOwnerOverride rejects write bodies that carry an owner field pointing
// at somebody else. Evaluated before the role matrix. A zero ownerID means
// the field was absent.
func GuardOwnerOverride(p Principal, ownerID uint) error {
	if ownerID != 0 && ownerID != p.ID {
		if p.Role == model.Admin || p.Role == model.ContentAdmin {
			return nil
		}
		return util.ErrForbidden
	}
	return nil
}
