package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/services/episodes"
)

// Newest returns the most recently created episodes
// @Summary      Newest episodes
// @Description  The ten most recently created active episodes.
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/episodes/newest [get]
func Newest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.EpisodeService.Newest(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "newest episodes", list)
	}
}

// MostListened returns the episodes with the highest listen counts
// @Summary      Most listened episodes
// @Description  The ten active episodes with the highest listen counts.
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/episodes/most-listened [get]
func MostListened(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.EpisodeService.MostListened(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "most listened episodes", list)
	}
}

// Search finds episodes by name and description
// @Summary      Search episodes
// @Description  Accent- and case-insensitive search ranked by relevance. Passing offset or limit returns a page envelope.
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        q      query string true  "Search term"
// @Param        offset query int    false "1-based page"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.EpisodeView}
// @Router       /api/v1/episodes/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.EpisodeService.Search(c.Request.Context(), c.Query("q"), types.Pagination(c, deps), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "episodes found", res)
	}
}

// Create stores an episode in one of the requester's podcasts
// @Summary      Create episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body episodes.EpisodeInput true "Episode"
// @Success      201 {object} types.DataResponse{data=models.EpisodeView}
// @Failure      400 {object} types.ErrorResponse "Invalid body or unknown podcast"
// @Failure      403 {object} types.ErrorResponse "Podcast belongs to someone else"
// @Router       /api/v1/episodes [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in episodes.EpisodeInput
		if !types.BindJSONOrError(c, &in) {
			return
		}
		view, err := deps.EpisodeService.Create(c.Request.Context(), types.RequesterID(c), in)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, "episode created", view)
	}
}

// Get returns one episode
// @Summary      Get episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=models.EpisodeView}
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/episodes/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, err := deps.EpisodeService.Get(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "episode fetched", view)
	}
}

// Update patches an episode
// @Summary      Update episode
// @Description  Apply the given fields. Moving an episode is only allowed between podcasts of the same author.
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path int                   true "Episode ID"
// @Param        body body episodes.EpisodePatch true "Fields to change"
// @Success      200 {object} types.DataResponse{data=models.EpisodeView}
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/episodes/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var patch episodes.EpisodePatch
		if !types.BindJSONOrError(c, &patch) {
			return
		}
		view, err := deps.EpisodeService.Update(c.Request.Context(), id, types.RequesterID(c), patch)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "episode updated", view)
	}
}

// Delete soft-deletes an episode
// @Summary      Delete episode
// @Tags         episodes
// @Security     BearerAuth
// @Param        id path int true "Episode ID"
// @Success      204
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/episodes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.EpisodeService.Delete(c.Request.Context(), id, types.RequesterID(c)); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Listen counts a play and records it in the requester's history
// @Summary      Listen to episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=models.EpisodeView}
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/episodes/{id}/listen [post]
func Listen(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, err := deps.EpisodeService.Listen(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "listen recorded", view)
	}
}
