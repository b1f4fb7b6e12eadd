package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-tools/timetable-api/internal/middleware"
	"github.com/campus-tools/timetable-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	if v, exists := c.Get(middleware.ContextUserKey); exists {
		if claims, ok := v.(*models.JWTClaims); ok {
			return claims
		}
	}
	return nil
}
