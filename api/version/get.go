package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// Build information, set by the cmd package from linker flags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Name is the service name reported by /version
const Name = "Podcast API"

// Get handles version requests
// @Summary      Version
// @Description  Build information of the running service.
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:      Name,
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			Status:    "running",
		})
	}
}
