package util

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseNotPublished = errors.New("course is not published")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyReviewed    = errors.New("course already reviewed")
	ErrFileURLRequired    = errors.New("fileUrl is required")
	ErrFeedbackRequired   = errors.New("feedback is required")
	ErrScoreOutOfRange    = errors.New("score is out of range")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidTransition  = errors.New("invalid submission status transition")
	ErrEmailRegistered    = errors.New("email is already registered")
)
