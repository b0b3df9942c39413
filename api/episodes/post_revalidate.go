package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PostRevalidate drops the cached page of an episode
// @Summary      Revalidate episode page
// @Description  Drops the cached page of an episode so the next request regenerates it from the episodes API
// @Tags         episodes
// @Produce      json
// @Param        slug path string true "Episode slug"
// @Success      200 {object} types.RevalidateResponse "Cached page dropped"
// @Failure      400 {object} types.ErrorResponse "Invalid slug"
// @Failure      500 {object} types.ErrorResponse "Cache failure"
// @Failure      503 {object} types.ErrorResponse "Episode service not available"
// @Router       /api/v1/episodes/{slug}/revalidate [post]
func PostRevalidate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.EpisodeService == nil {
			types.SendError(c, apperrors.New(apperrors.ErrCodeServiceDown, "Episode service not available"))
			return
		}

		slug, ok := types.SlugParam(c)
		if !ok {
			return
		}

		if err := deps.EpisodeService.Revalidate(c.Request.Context(), slug); err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to revalidate page").WithDetail("slug", slug))
			return
		}

		logrus.WithField("slug", slug).Info("episode page revalidated")
		types.SendSuccess(c, types.RevalidateResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Page will be regenerated on next request"},
			Slug:         slug,
		})
	}
}
