package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// SubmissionService runs the assignment submission state machine:
// pending to graded, pending to resubmit, and resubmit back to pending (a
// fresh row).
// Submissions are kept as history; the newest row for a (assignment, user)
// pair is the current one.
type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	Access         *AccessService
}

func NewSubmissionService(submissionRepo *repository.SubmissionRepository, access *AccessService) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		Access:         access,
	}
}

type SubmitRequest struct {
	FileURL string `json:"fileUrl" binding:"required"`
	Note    string `json:"note"`
}

type GradeRequest struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Submit creates a pending submission. After a resubmit request this starts a
// new history row rather than mutating the old one.
func (s *SubmissionService) Submit(p Principal, assignmentID uint, req SubmitRequest) (*model.Submission, error) {
	if req.FileURL == "" {
		return nil, util.ErrFileURLRequired
	}

	path, err := s.Access.ResolveAssignmentPath(assignmentID)
	if err != nil {
		return nil, err
	}

	current, err := s.SubmissionRepo.CurrentForUser(path.Assignment.ID, p.ID)
	if err == nil && current.Status != model.SubmissionResubmit {
		// pending is already open and graded is terminal; only a resubmit
		// request opens the door to a fresh row.
		return nil, util.ErrInvalidTransition
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	submission := &model.Submission{
		AssignmentID: path.Assignment.ID,
		UserID:       p.ID,
		FileURL:      req.FileURL,
		Note:         req.Note,
		Status:       model.SubmissionPending,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Grade moves a pending submission to graded. Only the owning instructor,
// admin, or content_admin may grade; the score must fit the assignment's
// maxScore when one is set.
func (s *SubmissionService) Grade(p Principal, submissionID uint, req GradeRequest) (*model.Submission, error) {
	submission, path, err := s.resolveForGrading(p, submissionID)
	if err != nil {
		return nil, err
	}

	if submission.Status != model.SubmissionPending {
		return nil, util.ErrInvalidTransition
	}
	if req.Score < 0 {
		return nil, util.ErrScoreOutOfRange
	}
	if path.Assignment.MaxScore != nil && req.Score > *path.Assignment.MaxScore {
		return nil, util.ErrScoreOutOfRange
	}

	now := time.Now()
	score := req.Score
	submission.Status = model.SubmissionGraded
	submission.Score = &score
	submission.Feedback = req.Feedback
	submission.GradedAt = &now
	submission.GradedBy = &p.ID

	if err := s.SubmissionRepo.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// RequestResubmission moves a pending submission to resubmit. Feedback is
// required, the score stays null.
func (s *SubmissionService) RequestResubmission(p Principal, submissionID uint, feedback string) (*model.Submission, error) {
	if feedback == "" {
		return nil, util.ErrFeedbackRequired
	}

	submission, _, err := s.resolveForGrading(p, submissionID)
	if err != nil {
		return nil, err
	}

	if submission.Status != model.SubmissionPending {
		return nil, util.ErrInvalidTransition
	}

	submission.Status = model.SubmissionResubmit
	submission.Feedback = feedback
	submission.Score = nil

	if err := s.SubmissionRepo.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// List is role-scoped: students see their own rows, instructors see rows
// under courses they own, admins see everything.
func (s *SubmissionService) List(p Principal) ([]model.Submission, error) {
	switch p.Role {
	case model.Admin, model.ContentAdmin:
		return s.SubmissionRepo.FindAll()
	case model.Instructor:
		return s.listForInstructor(p.ID)
	default:
		return s.SubmissionRepo.FindByUser(p.ID)
	}
}

// ListForAssignment scopes an assignment's submissions the same way.
func (s *SubmissionService) ListForAssignment(p Principal, assignmentID uint) ([]model.Submission, error) {
	path, err := s.Access.ResolveAssignmentPath(assignmentID)
	if err != nil {
		return nil, err
	}

	switch p.Role {
	case model.Admin, model.ContentAdmin:
		return s.SubmissionRepo.FindByAssignment(assignmentID)
	case model.Instructor:
		if path.Course.InstructorID != p.ID {
			return nil, util.ErrForbidden
		}
		return s.SubmissionRepo.FindByAssignment(assignmentID)
	default:
		subs, err := s.SubmissionRepo.FindByAssignment(assignmentID)
		if err != nil {
			return nil, err
		}
		own := subs[:0]
		for _, sub := range subs {
			if sub.UserID == p.ID {
				own = append(own, sub)
			}
		}
		return own, nil
	}
}

func (s *SubmissionService) listForInstructor(instructorID uint) ([]model.Submission, error) {
	courses, err := s.Access.CourseRepo.FindByInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	var moduleIDs []uint
	for _, course := range courses {
		ids, err := s.Access.ModuleRepo.IDsByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		moduleIDs = append(moduleIDs, ids...)
	}
	lessonIDs, err := s.Access.LessonRepo.IDsByModules(moduleIDs)
	if err != nil {
		return nil, err
	}
	assignmentIDs, err := s.Access.AssignmentRepo.IDsByLessons(lessonIDs)
	if err != nil {
		return nil, err
	}
	return s.SubmissionRepo.FindByAssignments(assignmentIDs)
}

// resolveForGrading loads the submission and its ownership path and checks
// grading authority.
func (s *SubmissionService) resolveForGrading(p Principal, submissionID uint) (*model.Submission, *ResourcePath, error) {
	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrNotFound
		}
		return nil, nil, err
	}

	path, err := s.Access.ResolveAssignmentPath(submission.AssignmentID)
	if err != nil {
		return nil, nil, err
	}

	switch p.Role {
	case model.Admin, model.ContentAdmin:
	case model.Instructor:
		if path.Course.InstructorID != p.ID {
			return nil, nil, util.ErrForbidden
		}
	default:
		return nil, nil, util.ErrForbidden
	}

	return submission, path, nil
}
