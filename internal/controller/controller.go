package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// principalFrom builds the engine's principal from the JWT claims placed on
// the context by the auth middleware. Nil means unauthenticated.
func principalFrom(c *gin.Context) *service.Principal {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}
	return &service.Principal{ID: claims.UserID, Role: claims.Role}
}
