package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers podcast routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Create(deps))
	router.GET("/search", Search(deps))

	router.GET("/:id", Get(deps))
	router.PATCH("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
	router.DELETE("/:id/episodes", DeleteEpisodes(deps))

	router.POST("/:id/subscribe", Subscribe(deps))
	router.DELETE("/:id/subscribe", Unsubscribe(deps))
}
