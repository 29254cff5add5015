package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/services/users"
)

// GetProfile returns the requester's profile
// @Summary      Get own profile
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=models.UserProfile}
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/users/self [get]
func GetProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := deps.UserService.Profile(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "profile fetched", profile)
	}
}

// UpdateProfile patches the requester's profile
// @Summary      Update own profile
// @Tags         self
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body users.ProfileUpdate true "Fields to change"
// @Success      200 {object} types.DataResponse{data=models.UserProfile}
// @Router       /api/v1/users/self [patch]
func UpdateProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update users.ProfileUpdate
		if !types.BindJSONOrError(c, &update) {
			return
		}
		profile, err := deps.UserService.UpdateProfile(c.Request.Context(), types.RequesterID(c), update)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "profile updated", profile)
	}
}

// CreateChannel turns the requester into a creator
// @Summary      Create channel
// @Tags         self
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.NameRequest true "Channel name"
// @Success      201 {object} types.DataResponse{data=models.UserProfile}
// @Failure      409 {object} types.ErrorResponse "Already a creator"
// @Router       /api/v1/users/self/channel [post]
func CreateChannel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		profile, err := deps.UserService.CreateChannel(c.Request.Context(), types.RequesterID(c), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, "channel created", profile)
	}
}

// UpdateChannel renames the requester's channel
// @Summary      Rename channel
// @Tags         self
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.NameRequest true "Channel name"
// @Success      200 {object} types.DataResponse{data=models.UserProfile}
// @Failure      403 {object} types.ErrorResponse "Not a creator"
// @Router       /api/v1/users/self/channel [patch]
func UpdateChannel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		profile, err := deps.UserService.UpdateChannel(c.Request.Context(), types.RequesterID(c), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "channel updated", profile)
	}
}

// Favorites lists the requester's favorite episodes, newest first
// @Summary      List favorites
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        offset query int false "1-based page"
// @Param        limit  query int false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/users/self/favorites [get]
func Favorites(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.EpisodeService.Favorites(c.Request.Context(), types.RequesterID(c), types.Pagination(c, deps))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "favorites fetched", res)
	}
}

// AddFavorite marks an episode as favorite
// @Summary      Add favorite
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        episodeId path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Failure      404 {object} types.ErrorResponse
// @Failure      409 {object} types.ErrorResponse "Already a favorite"
// @Router       /api/v1/users/self/favorites/{episodeId} [post]
func AddFavorite(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episodeId")
		if !ok {
			return
		}
		list, err := deps.EpisodeService.AddFavorite(c.Request.Context(), types.RequesterID(c), episodeID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "favorite added", list)
	}
}

// RemoveFavorite unmarks an episode
// @Summary      Remove favorite
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        episodeId path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Failure      409 {object} types.ErrorResponse "Not a favorite"
// @Router       /api/v1/users/self/favorites/{episodeId} [delete]
func RemoveFavorite(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episodeId")
		if !ok {
			return
		}
		list, err := deps.EpisodeService.RemoveFavorite(c.Request.Context(), types.RequesterID(c), episodeID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "favorite removed", list)
	}
}

// ClearFavorites empties the favorites set
// @Summary      Clear favorites
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/users/self/favorites [delete]
func ClearFavorites(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.EpisodeService.ClearFavorites(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "favorites cleared", list)
	}
}

// Listened lists the requester's listen history, most recent first
// @Summary      List listened episodes
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        offset query int false "1-based page"
// @Param        limit  query int false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/users/self/listened [get]
func Listened(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.EpisodeService.Listened(c.Request.Context(), types.RequesterID(c), types.Pagination(c, deps))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "listened episodes fetched", res)
	}
}

// RemoveListened drops one episode from the listen history
// @Summary      Remove listened episode
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        episodeId path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Failure      409 {object} types.ErrorResponse "Not in history"
// @Router       /api/v1/users/self/listened/{episodeId} [delete]
func RemoveListened(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "episodeId")
		if !ok {
			return
		}
		list, err := deps.EpisodeService.RemoveListened(c.Request.Context(), types.RequesterID(c), episodeID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "listened episode removed", list)
	}
}

// ClearListened empties the listen history
// @Summary      Clear listened episodes
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/users/self/listened [delete]
func ClearListened(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.EpisodeService.ClearListened(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "listened episodes cleared", list)
	}
}

// Subscriptions lists the podcasts the requester follows, most recent first
// @Summary      List subscriptions
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        offset query int false "1-based page"
// @Param        limit  query int false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.PodcastView}
// @Router       /api/v1/users/self/subscriptions [get]
func Subscriptions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.PodcastService.Subscriptions(c.Request.Context(), types.RequesterID(c), types.Pagination(c, deps))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "subscriptions fetched", res)
	}
}

// SearchHistory returns recent search terms, most recent first
// @Summary      Search history
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]string}
// @Router       /api/v1/users/self/search-history [get]
func SearchHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := deps.UserService.SearchHistory(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "search history fetched", history)
	}
}

// RemoveSearchTerm drops one term from the search history
// @Summary      Remove search term
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Param        term path string true "Search term"
// @Success      200 {object} types.DataResponse{data=[]string}
// @Failure      409 {object} types.ErrorResponse "Not in history"
// @Router       /api/v1/users/self/search-history/{term} [delete]
func RemoveSearchTerm(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := deps.UserService.RemoveSearchTerm(c.Request.Context(), types.RequesterID(c), c.Param("term"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "search term removed", history)
	}
}

// ClearSearchHistory empties the search history
// @Summary      Clear search history
// @Tags         self
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]string}
// @Router       /api/v1/users/self/search-history [delete]
func ClearSearchHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.UserService.ClearSearchHistory(c.Request.Context(), types.RequesterID(c)); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "search history cleared", []string{})
	}
}
