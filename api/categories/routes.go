package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers categories routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/categories
	router.GET("", List(deps))
	// POST /api/v1/categories
	router.POST("", Create(deps))
}
