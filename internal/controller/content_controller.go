package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List a course's modules
// @Tags content
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/modules [get]
func (c *ContentController) ListModules(ctx *gin.Context) {
	modules, err := c.ContentService.ListModules(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// @Summary Create a module under a course
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body service.ModuleRequest true "module payload"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/modules [post]
func (c *ContentController) CreateModule(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.ContentService.CreateModule(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

// @Summary Update a module
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Param body body service.ModuleRequest true "module payload"
// @Success 200 {object} util.Response
// @Router /api/modules/{id} [put]
func (c *ContentController) UpdateModule(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.ContentService.UpdateModule(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// @Summary Delete a module (cascades to lessons)
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id} [delete]
func (c *ContentController) DeleteModule(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteModule(*p, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "module deleted"})
}

// @Summary List a module's lessons
// @Tags content
// @Produce json
// @Param id path int true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id}/lessons [get]
func (c *ContentController) ListLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.ListLessons(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// @Summary Create a lesson under a module
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Param body body service.LessonRequest true "lesson payload"
// @Success 201 {object} util.Response
// @Router /api/modules/{id}/lessons [post]
func (c *ContentController) CreateLesson(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.CreateLesson(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Update a lesson
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Param body body service.LessonRequest true "lesson payload"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [put]
func (c *ContentController) UpdateLesson(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.UpdateLesson(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// @Summary Delete a lesson (cascades to assignments)
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [delete]
func (c *ContentController) DeleteLesson(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteLesson(*p, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "lesson deleted"})
}

// @Summary List a lesson's assignments
// @Tags content
// @Produce json
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/assignments [get]
func (c *ContentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.ContentService.ListAssignments(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary Create an assignment under a lesson
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Param body body service.AssignmentRequest true "assignment payload"
// @Success 201 {object} util.Response
// @Router /api/lessons/{id}/assignments [post]
func (c *ContentController) CreateAssignment(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.ContentService.CreateAssignment(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary Update an assignment
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body service.AssignmentRequest true "assignment payload"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [put]
func (c *ContentController) UpdateAssignment(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.ContentService.UpdateAssignment(*p, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Delete an assignment
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *ContentController) DeleteAssignment(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteAssignment(*p, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "assignment deleted"})
}
