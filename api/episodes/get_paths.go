package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// GetPaths lists the episode pages generated ahead of time
// @Summary      Static episode paths
// @Description  Returns the slugs of the latest episodes, whose pages are generated ahead of time, and the fallback mode used for every other slug
// @Tags         episodes
// @Produce      json
// @Success      200 {object} types.StaticPathsResponse "Precomputed paths"
// @Failure      502 {object} types.ErrorResponse "Episodes API failure"
// @Failure      503 {object} types.ErrorResponse "Episode service not available"
// @Router       /api/v1/episodes/paths [get]
func GetPaths(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.EpisodeService == nil {
			types.SendError(c, apperrors.New(apperrors.ErrCodeServiceDown, "Episode service not available"))
			return
		}

		paths, err := deps.EpisodeService.StaticPaths(c.Request.Context())
		if err != nil {
			types.SendError(c, apperrors.ExternalServiceError("episodes", err))
			return
		}

		types.SendSuccess(c, types.StaticPathsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Static paths"},
			Paths:        paths.Paths,
			Fallback:     paths.Fallback,
			Count:        len(paths.Paths),
		})
	}
}
