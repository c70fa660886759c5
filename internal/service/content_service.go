package service

import (
	"fmt"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

// ContentService manages the module/lesson/assignment levels of the course
// hierarchy. Every mutation resolves the ownership path first and runs it
// through the access evaluator.
type ContentService struct {
	ModuleRepo     *repository.ModuleRepository
	LessonRepo     *repository.LessonRepository
	AssignmentRepo *repository.AssignmentRepository
	Access         *AccessService
}

func NewContentService(
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	assignmentRepo *repository.AssignmentRepository,
	access *AccessService,
) *ContentService {
	return &ContentService{
		ModuleRepo:     moduleRepo,
		LessonRepo:     lessonRepo,
		AssignmentRepo: assignmentRepo,
		Access:         access,
	}
}

type ModuleRequest struct {
	Title      string `json:"title" binding:"required"`
	OrderIndex int    `json:"orderIndex"`
}

type LessonRequest struct {
	Title           string             `json:"title" binding:"required"`
	Content         string             `json:"content"`
	OrderIndex      int                `json:"orderIndex"`
	IsFree          bool               `json:"isFree"`
	DurationMinutes int                `json:"durationMinutes"`
	Attachments     []model.Attachment `json:"attachments"`
}

type AssignmentRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	MaxScore    *int    `json:"maxScore"`
}

func (s *ContentService) CreateModule(p Principal, courseID uint, req ModuleRequest) (*model.CourseModule, error) {
	path, err := s.Access.ResolveCoursePath(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionCreate, path); err != nil {
		return nil, err
	}

	m := &model.CourseModule{
		CourseID:   courseID,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
	}
	if err := s.ModuleRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) UpdateModule(p Principal, moduleID uint, req ModuleRequest) (*model.CourseModule, error) {
	path, err := s.Access.ResolveModulePath(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionUpdate, path); err != nil {
		return nil, err
	}

	m := path.Module
	m.Title = req.Title
	m.OrderIndex = req.OrderIndex
	if err := s.ModuleRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) DeleteModule(p Principal, moduleID uint) error {
	path, err := s.Access.ResolveModulePath(moduleID)
	if err != nil {
		return err
	}
	if err := s.Access.CanAct(p, ActionDelete, path); err != nil {
		return err
	}
	return s.deleteModuleTree(moduleID)
}

func (s *ContentService) ListModules(courseID uint) ([]model.CourseModule, error) {
	return s.ModuleRepo.FindByCourse(courseID)
}

func (s *ContentService) CreateLesson(p Principal, moduleID uint, req LessonRequest) (*model.Lesson, error) {
	path, err := s.Access.ResolveModulePath(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionCreate, path); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		ModuleID:        moduleID,
		Title:           req.Title,
		Content:         req.Content,
		OrderIndex:      req.OrderIndex,
		IsFree:          req.IsFree,
		DurationMinutes: req.DurationMinutes,
		Attachments:     req.Attachments,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) UpdateLesson(p Principal, lessonID uint, req LessonRequest) (*model.Lesson, error) {
	path, err := s.Access.ResolveLessonPath(lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionUpdate, path); err != nil {
		return nil, err
	}

	lesson := path.Lesson
	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.OrderIndex = req.OrderIndex
	lesson.IsFree = req.IsFree
	lesson.DurationMinutes = req.DurationMinutes
	lesson.Attachments = req.Attachments
	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) DeleteLesson(p Principal, lessonID uint) error {
	path, err := s.Access.ResolveLessonPath(lessonID)
	if err != nil {
		return err
	}
	if err := s.Access.CanAct(p, ActionDelete, path); err != nil {
		return err
	}
	return s.deleteLessonTree(lessonID)
}

func (s *ContentService) ListLessons(moduleID uint) ([]model.Lesson, error) {
	return s.LessonRepo.FindByModule(moduleID)
}

func (s *ContentService) CreateAssignment(p Principal, lessonID uint, req AssignmentRequest) (*model.Assignment, error) {
	path, err := s.Access.ResolveLessonPath(lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionCreate, path); err != nil {
		return nil, err
	}

	a := &model.Assignment{
		LessonID:    lessonID,
		Title:       req.Title,
		Description: req.Description,
		MaxScore:    req.MaxScore,
	}
	if due, err := parseDueDate(req.DueDate); err != nil {
		return nil, err
	} else {
		a.DueDate = due
	}

	if err := s.AssignmentRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ContentService) UpdateAssignment(p Principal, assignmentID uint, req AssignmentRequest) (*model.Assignment, error) {
	path, err := s.Access.ResolveAssignmentPath(assignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.CanAct(p, ActionUpdate, path); err != nil {
		return nil, err
	}

	a := path.Assignment
	a.Title = req.Title
	a.Description = req.Description
	a.MaxScore = req.MaxScore
	if due, err := parseDueDate(req.DueDate); err != nil {
		return nil, err
	} else {
		a.DueDate = due
	}

	if err := s.AssignmentRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ContentService) DeleteAssignment(p Principal, assignmentID uint) error {
	path, err := s.Access.ResolveAssignmentPath(assignmentID)
	if err != nil {
		return err
	}
	if err := s.Access.CanAct(p, ActionDelete, path); err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(assignmentID)
}

func (s *ContentService) ListAssignments(lessonID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindByLesson(lessonID)
}

// deleteCourseTree cascades a course deletion through modules, lessons and
// assignments. Authorization was checked by the caller.
func (s *ContentService) deleteCourseTree(courseID uint) error {
	moduleIDs, err := s.ModuleRepo.IDsByCourse(courseID)
	if err != nil {
		return err
	}
	for _, id := range moduleIDs {
		if err := s.deleteModuleTree(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) deleteModuleTree(moduleID uint) error {
	lessonIDs, err := s.LessonRepo.IDsByModules([]uint{moduleID})
	if err != nil {
		return err
	}
	for _, id := range lessonIDs {
		if err := s.deleteLessonTree(id); err != nil {
			return err
		}
	}
	return s.ModuleRepo.Delete(moduleID)
}

func (s *ContentService) deleteLessonTree(lessonID uint) error {
	if err := s.AssignmentRepo.DeleteByLesson(lessonID); err != nil {
		return err
	}
	return s.LessonRepo.Delete(lessonID)
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	due, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate, want RFC3339: %w", err)
	}
	return &due, nil
}
