package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/newest", Newest(deps))
	router.GET("/most-listened", MostListened(deps))
	router.GET("/search", Search(deps))

	router.POST("", Create(deps))
	router.GET("/:id", Get(deps))
	router.PATCH("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
	router.POST("/:id/listen", Listen(deps))
}
