package util

import (
	"errors"
	"net/http"

	"learnhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes surfaced to API clients. They are stable; messages are not.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeCourseNotFound     = "COURSE_NOT_FOUND"
	CodeCourseNotPublished = "COURSE_NOT_PUBLISHED"
	CodeAlreadyEnrolled    = "ALREADY_ENROLLED"
	CodeAlreadyReviewed    = "ALREADY_REVIEWED"
	CodeInternal           = "INTERNAL_ERROR"
)

// Response 统一响应结构
type Response struct {
	Code      int         `json:"code"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, errorCode, message string) {
	c.JSON(code, Response{
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, CodeForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalidInput, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, CodeNotFound, "Resource not found")
}

func Conflict(c *gin.Context, errorCode, message string) {
	Error(c, http.StatusConflict, errorCode, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// RespondError maps the service-layer error taxonomy onto the response
// envelope. Unknown errors are treated as internal and logged with the cause.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(c)
	case errors.Is(err, ErrForbidden):
		Forbidden(c)
	case errors.Is(err, ErrCourseNotFound):
		Error(c, http.StatusNotFound, CodeCourseNotFound, err.Error())
	case errors.Is(err, ErrNotFound):
		NotFound(c)
	case errors.Is(err, ErrCourseNotPublished):
		BadRequestCode(c, CodeCourseNotPublished, err.Error())
	case errors.Is(err, ErrAlreadyEnrolled):
		Conflict(c, CodeAlreadyEnrolled, err.Error())
	case errors.Is(err, ErrAlreadyReviewed):
		Conflict(c, CodeAlreadyReviewed, err.Error())
	case errors.Is(err, ErrNotEnrolled),
		errors.Is(err, ErrFileURLRequired),
		errors.Is(err, ErrFeedbackRequired),
		errors.Is(err, ErrScoreOutOfRange),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidTransition):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}

func BadRequestCode(c *gin.Context, errorCode, message string) {
	Error(c, http.StatusBadRequest, errorCode, message)
}
