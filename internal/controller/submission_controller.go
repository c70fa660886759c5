package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

type ResubmitRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// @Summary Submit an assignment
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body service.SubmitRequest true "submission payload"
// @Success 201 {object} util.Response
// @Router /api/assignments/{id}/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.Submit(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// @Summary Role-scoped submission list
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.SubmissionService.List(*p)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// @Summary Submissions for one assignment, role-scoped
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id}/submissions [get]
func (c *SubmissionController) ListForAssignment(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.SubmissionService.ListForAssignment(*p, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// @Summary Grade a pending submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Param body body service.GradeRequest true "score and feedback"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id}/grade [post]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.Grade(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// @Summary Request a resubmission
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Param body body ResubmitRequest true "feedback for the learner"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id}/resubmit [post]
func (c *SubmissionController) RequestResubmission(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ResubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.RequestResubmission(*p, util.MustParseUint(ctx.Param("id")), req.Feedback)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
