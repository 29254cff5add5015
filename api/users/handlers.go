package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// SearchCreators finds creators by channel name and name
// @Summary      Search creators
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        q      query string true  "Search term"
// @Param        offset query int    false "1-based page"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.UserSummary}
// @Router       /api/v1/users/search [get]
func SearchCreators(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.UserService.SearchCreators(c.Request.Context(), c.Query("q"), types.Pagination(c, deps), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "creators found", res)
	}
}

// Channel returns a creator's public channel
// @Summary      Get channel
// @Description  A creator with their active podcasts. 404 when the user is not a creator.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} types.DataResponse{data=models.ChannelView}
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/users/{id}/channel [get]
func Channel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		channel, err := deps.UserService.Channel(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "channel fetched", channel)
	}
}
