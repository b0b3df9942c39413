package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
)

// Get handles version requests
// @Summary      Service version
// @Description  Returns the name and build of the running service
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse "Version information"
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	build := types.BuildInfo{Version: "dev"}
	if deps != nil && deps.Build.Version != "" {
		build = deps.Build
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			BuildInfo:   build,
			Name:        "Podcastr",
			Description: "Episode pages for the Podcastr podcast",
			Status:      "running",
		})
	}
}
