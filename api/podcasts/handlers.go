package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
)

// Create stores a podcast for the requester
// @Summary      Create podcast
// @Description  Create a podcast owned by the requester. The requester must have a channel and the category must exist.
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body podcasts.PodcastInput true "Podcast"
// @Success      201 {object} types.DataResponse{data=models.PodcastView}
// @Failure      400 {object} types.ErrorResponse "Invalid body or unknown category"
// @Failure      403 {object} types.ErrorResponse "Requester is not a creator"
// @Router       /api/v1/podcasts [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in podcasts.PodcastInput
		if !types.BindJSONOrError(c, &in) {
			return
		}
		view, err := deps.PodcastService.Create(c.Request.Context(), types.RequesterID(c), in)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, "podcast created", view)
	}
}

// Get returns a podcast with its episodes and aggregates
// @Summary      Get podcast
// @Description  Get a podcast with author, category, active episodes, view count and subscription flag.
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse{data=models.PodcastView}
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, err := deps.PodcastService.Get(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "podcast fetched", view)
	}
}

// Update patches a podcast
// @Summary      Update podcast
// @Description  Apply the given fields to a podcast. Only the author may update it.
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path int                   true "Podcast ID"
// @Param        body body podcasts.PodcastPatch true "Fields to change"
// @Success      200 {object} types.DataResponse{data=models.PodcastView}
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var patch podcasts.PodcastPatch
		if !types.BindJSONOrError(c, &patch) {
			return
		}
		view, err := deps.PodcastService.Update(c.Request.Context(), id, types.RequesterID(c), patch)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "podcast updated", view)
	}
}

// Delete removes a podcast and its episodes
// @Summary      Delete podcast
// @Description  Soft-delete a podcast and all of its episodes in one transaction.
// @Tags         podcasts
// @Security     BearerAuth
// @Param        id path int true "Podcast ID"
// @Success      204
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.PodcastService.Delete(c.Request.Context(), id, types.RequesterID(c)); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeleteEpisodes removes every episode of a podcast
// @Summary      Delete podcast episodes
// @Description  Soft-delete all active episodes of a podcast, keeping the podcast.
// @Tags         podcasts
// @Security     BearerAuth
// @Param        id path int true "Podcast ID"
// @Success      204
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id}/episodes [delete]
func DeleteEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.PodcastService.DeleteEpisodes(c.Request.Context(), id, types.RequesterID(c)); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Search finds podcasts by name and description
// @Summary      Search podcasts
// @Description  Accent- and case-insensitive search ranked by relevance. Passing offset or limit returns a page envelope.
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        q      query string true  "Search term"
// @Param        offset query int    false "1-based page"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} types.DataResponse{data=[]models.PodcastView}
// @Router       /api/v1/podcasts/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := deps.PodcastService.Search(c.Request.Context(), c.Query("q"), types.Pagination(c, deps), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "podcasts found", res)
	}
}

// Subscribe adds the podcast to the requester's subscriptions
// @Summary      Subscribe
// @Description  Subscribe to a podcast. Returns all subscriptions, most recent first.
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse{data=[]models.PodcastView}
// @Failure      404 {object} types.ErrorResponse
// @Failure      409 {object} types.ErrorResponse "Already subscribed or own podcast"
// @Router       /api/v1/podcasts/{id}/subscribe [post]
func Subscribe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		list, err := deps.PodcastService.Subscribe(c.Request.Context(), types.RequesterID(c), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "subscribed", list)
	}
}

// Unsubscribe removes the podcast from the requester's subscriptions
// @Summary      Unsubscribe
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse{data=[]models.PodcastView}
// @Failure      409 {object} types.ErrorResponse "Not subscribed"
// @Router       /api/v1/podcasts/{id}/subscribe [delete]
func Unsubscribe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		list, err := deps.PodcastService.Unsubscribe(c.Request.Context(), types.RequesterID(c), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "unsubscribed", list)
	}
}
