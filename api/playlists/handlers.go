package playlists

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// List returns the requester's playlists
// @Summary      List playlists
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.PlaylistSummary}
// @Router       /api/v1/playlists [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PlaylistService.List(c.Request.Context(), types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "playlists fetched", list)
	}
}

// Create stores an empty playlist
// @Summary      Create playlist
// @Description  Names are unique among the requester's active playlists.
// @Tags         playlists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.NameRequest true "Playlist name"
// @Success      201 {object} types.DataResponse{data=models.PlaylistView}
// @Failure      409 {object} types.ErrorResponse "Name already used"
// @Router       /api/v1/playlists [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		view, err := deps.PlaylistService.Create(c.Request.Context(), types.RequesterID(c), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, "playlist created", view)
	}
}

// Get returns a playlist with its episodes
// @Summary      Get playlist
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Playlist ID"
// @Success      200 {object} types.DataResponse{data=models.PlaylistView}
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/playlists/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, err := deps.PlaylistService.Get(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "playlist fetched", view)
	}
}

// Rename changes a playlist's name
// @Summary      Rename playlist
// @Tags         playlists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path int               true "Playlist ID"
// @Param        body body types.NameRequest true "New name"
// @Success      200 {object} types.DataResponse{data=models.PlaylistView}
// @Failure      409 {object} types.ErrorResponse "Name already used"
// @Router       /api/v1/playlists/{id} [patch]
func Rename(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		view, err := deps.PlaylistService.Rename(c.Request.Context(), id, types.RequesterID(c), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "playlist renamed", view)
	}
}

// Delete soft-deletes a playlist
// @Summary      Delete playlist
// @Tags         playlists
// @Security     BearerAuth
// @Param        id path int true "Playlist ID"
// @Success      204
// @Failure      403 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/playlists/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.PlaylistService.Delete(c.Request.Context(), id, types.RequesterID(c)); err != nil {
			types.SendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AddEpisode appends an episode to a playlist
// @Summary      Add episode to playlist
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        id        path int true "Playlist ID"
// @Param        episodeId path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=models.PlaylistView}
// @Failure      404 {object} types.ErrorResponse
// @Failure      409 {object} types.ErrorResponse "Already in playlist"
// @Router       /api/v1/playlists/{id}/episodes/{episodeId} [post]
func AddEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		episodeID, ok := types.ParseUintParam(c, "episodeId")
		if !ok {
			return
		}
		view, err := deps.PlaylistService.AddEpisode(c.Request.Context(), id, types.RequesterID(c), episodeID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "episode added", view)
	}
}

// RemoveEpisode takes an episode out of a playlist
// @Summary      Remove episode from playlist
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        id        path int true "Playlist ID"
// @Param        episodeId path int true "Episode ID"
// @Success      200 {object} types.DataResponse{data=models.PlaylistView}
// @Failure      409 {object} types.ErrorResponse "Not in playlist"
// @Router       /api/v1/playlists/{id}/episodes/{episodeId} [delete]
func RemoveEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		episodeID, ok := types.ParseUintParam(c, "episodeId")
		if !ok {
			return
		}
		view, err := deps.PlaylistService.RemoveEpisode(c.Request.Context(), id, types.RequesterID(c), episodeID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "episode removed", view)
	}
}

// RemoveAllEpisodes empties a playlist
// @Summary      Empty playlist
// @Tags         playlists
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Playlist ID"
// @Success      200 {object} types.DataResponse{data=models.PlaylistView}
// @Router       /api/v1/playlists/{id}/episodes [delete]
func RemoveAllEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, err := deps.PlaylistService.RemoveAllEpisodes(c.Request.Context(), id, types.RequesterID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "playlist emptied", view)
	}
}
