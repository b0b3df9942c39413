package episodes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/render"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// PostPlay hands the episode of a page to the player
// @Summary      Play episode
// @Description  Starts playback of an episode through the player. Form posts are redirected back to the episode page; clients accepting JSON get the started entry.
// @Tags         pages
// @Produce      json
// @Param        slug path string true "Episode slug"
// @Success      200 {object} types.PlayResponse "Playback started"
// @Success      303 {string} string "Redirect to the episode page"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      502 {object} types.ErrorResponse "Episodes API failure"
// @Failure      503 {object} types.ErrorResponse "Player not available"
// @Router       /episodes/{slug}/play [post]
func PostPlay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		wantsJSON := types.WantsJSON(c)
		fail := func(appErr *apperrors.AppError) {
			if wantsJSON {
				types.SendError(c, appErr)
				return
			}
			renderErrorPage(c, deps, appErr.GetHTTPCode(), appErr.Message)
		}

		if deps == nil || deps.EpisodeService == nil || deps.Player == nil {
			fail(apperrors.New(apperrors.ErrCodeServiceDown, "Player not available"))
			return
		}

		slug, ok := slugOrFail(c, fail)
		if !ok {
			return
		}

		page, err := deps.EpisodeService.GetEpisodePage(c.Request.Context(), slug)
		if err != nil {
			fail(types.ToAppError(err, slug))
			return
		}

		startedAt := time.Now().UTC()
		if err := deps.Player.Begin(c.Request.Context(), page.Episode); err != nil {
			fail(apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to start playback").WithDetail("slug", slug))
			return
		}

		if !wantsJSON {
			c.Redirect(http.StatusSeeOther, render.EpisodePath(slug))
			return
		}

		types.SendSuccess(c, types.PlayResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Playback started"},
			Episode:      page.Episode,
			StartedAt:    startedAt,
		})
	}
}

func slugOrFail(c *gin.Context, fail func(*apperrors.AppError)) (string, bool) {
	slug := c.Param("slug")
	if slug == "" {
		fail(apperrors.ValidationError("slug", "cannot be empty"))
		return "", false
	}
	return slug, true
}
