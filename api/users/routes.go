package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// RegisterRoutes registers user routes, including the requester's own
// resources under /self.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/search", SearchCreators(deps))
	router.GET("/:id/channel", Channel(deps))

	self := router.Group("/self")
	{
		self.GET("", GetProfile(deps))
		self.PATCH("", UpdateProfile(deps))
		self.POST("/channel", CreateChannel(deps))
		self.PATCH("/channel", UpdateChannel(deps))

		self.GET("/favorites", Favorites(deps))
		self.POST("/favorites/:episodeId", AddFavorite(deps))
		self.DELETE("/favorites/:episodeId", RemoveFavorite(deps))
		self.DELETE("/favorites", ClearFavorites(deps))

		self.GET("/listened", Listened(deps))
		self.DELETE("/listened/:episodeId", RemoveListened(deps))
		self.DELETE("/listened", ClearListened(deps))

		self.GET("/subscriptions", Subscriptions(deps))

		self.GET("/search-history", SearchHistory(deps))
		self.DELETE("/search-history", ClearSearchHistory(deps))
		self.DELETE("/search-history/:term", RemoveSearchTerm(deps))
	}
}
