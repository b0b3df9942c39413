package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// GetProps returns the data an episode page is rendered from
// @Summary      Episode page props
// @Description  Returns the shaped episode record behind a page, with its formatted publish date and duration, plus the revalidation window in seconds
// @Tags         episodes
// @Produce      json
// @Param        slug path string true "Episode slug"
// @Success      200 {object} types.EpisodePageResponse "Page props"
// @Failure      400 {object} types.ErrorResponse "Invalid slug"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      502 {object} types.ErrorResponse "Episodes API failure"
// @Failure      503 {object} types.ErrorResponse "Episode service not available"
// @Router       /api/v1/episodes/{slug} [get]
func GetProps(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.EpisodeService == nil {
			types.SendError(c, apperrors.New(apperrors.ErrCodeServiceDown, "Episode service not available"))
			return
		}

		slug, ok := types.SlugParam(c)
		if !ok {
			return
		}

		page, err := deps.EpisodeService.GetEpisodePage(c.Request.Context(), slug)
		if err != nil {
			types.SendError(c, types.ToAppError(err, slug))
			return
		}

		types.SendSuccess(c, types.EpisodePageResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Episode page"},
			Episode:      page.Episode,
			Revalidate:   page.Revalidate,
			GeneratedAt:  page.GeneratedAt,
		})
	}
}
