package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// @Summary The caller's certificate for a course
// @Description Issues the certificate on read when the course is completed but the in-request pipeline missed it.
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/certificate [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	cert, err := c.CertificateService.MaybeIssue(p.ID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	if cert == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, cert)
}

// @Summary List the caller's certificates
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/certificates [get]
func (c *CertificateController) ListMine(ctx *gin.Context) {
	p := principalFrom(ctx)
	if p == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertificateService.ListForUser(p.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}
