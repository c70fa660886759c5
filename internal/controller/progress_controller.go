package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService   *service.ProgressService
	EnrollmentService *service.EnrollmentService
	AccessService     *service.AccessService
}

func NewProgressController(
	progressService *service.ProgressService,
	enrollmentService *service.EnrollmentService,
	accessService *service.AccessService,
) *ProgressController {
	return &ProgressController{
		ProgressService:   progressService,
		EnrollmentService: enrollmentService,
		AccessService:     accessService,
	}
}

// @Summary The caller's progress for a lesson
// @Description Returns a zero-valued row when the lesson has not been touched.
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetProgress(p.ID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary Record lesson progress
// @Description Upserts the caller's row and synchronously recomputes the enrollment percentage.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Param body body service.RecordProgressRequest true "partial progress update"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/progress [post]
func (c *ProgressController) Record(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lessonID := util.MustParseUint(ctx.Param("id"))
	progress, err := c.ProgressService.RecordProgress(p.ID, lessonID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	// best-effort navigation hint
	if path, err := c.AccessService.ResolveLessonPath(lessonID); err == nil {
		_ = c.EnrollmentService.TouchLastAccessed(p.ID, path.Course.ID, lessonID)
	}

	util.Success(ctx, progress)
}
