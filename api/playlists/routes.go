package playlists

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers playlist routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.POST("", Create(deps))

	router.GET("/:id", Get(deps))
	router.PATCH("/:id", Rename(deps))
	router.DELETE("/:id", Delete(deps))

	router.POST("/:id/episodes/:episodeId", AddEpisode(deps))
	router.DELETE("/:id/episodes/:episodeId", RemoveEpisode(deps))
	router.DELETE("/:id/episodes", RemoveAllEpisodes(deps))
}
