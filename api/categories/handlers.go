package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// List returns all categories
// @Summary      List categories
// @Description  List every active podcast category ordered by name.
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse{data=[]models.Category}
// @Failure      401 {object} types.ErrorResponse
// @Router       /api/v1/categories [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := deps.CategoryService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, "categories fetched", categories)
	}
}

// Create adds a category
// @Summary      Create category
// @Description  Create a podcast category. Names are unique.
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.NameRequest true "Category name"
// @Success      201 {object} types.DataResponse{data=models.Category}
// @Failure      400 {object} types.ErrorResponse
// @Failure      409 {object} types.ErrorResponse "Name already exists"
// @Router       /api/v1/categories [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		category, err := deps.CategoryService.Create(c.Request.Context(), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, "category created", category)
	}
}
