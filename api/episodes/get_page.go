package episodes

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/sirupsen/logrus"
)

// GetPage renders the episode page for a slug
// @Summary      Episode page
// @Description  Renders the HTML page of one episode. Pages not generated ahead of time are generated on the first request, which blocks until the page is ready. Generated pages are served from cache for the revalidation window.
// @Tags         pages
// @Produce      html
// @Param        slug path string true "Episode slug"
// @Success      200 {string} string "Episode page"
// @Failure      404 {string} string "Episode not found"
// @Failure      502 {string} string "Episodes API failure"
// @Router       /episodes/{slug} [get]
func GetPage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if serviceUnavailable(c, deps) {
			return
		}
		slug := c.Param("slug")

		page, err := deps.EpisodeService.GetEpisodePage(c.Request.Context(), slug)
		if err != nil {
			appErr := types.ToAppError(err, slug)
			logrus.WithFields(logrus.Fields{
				"slug": slug,
				"code": appErr.Code,
			}).WithError(err).Warn("episode page unavailable")
			renderErrorPage(c, deps, appErr.GetHTTPCode(), appErr.Message)
			return
		}

		if deps.Renderer == nil {
			renderErrorPage(c, deps, http.StatusServiceUnavailable, "Renderer not available")
			return
		}

		var buf bytes.Buffer
		if err := deps.Renderer.RenderEpisode(&buf, page.Episode); err != nil {
			logrus.WithField("slug", slug).WithError(err).Error("failed to render episode page")
			renderErrorPage(c, deps, http.StatusInternalServerError, "Failed to render episode page")
			return
		}

		if !page.GeneratedAt.IsZero() {
			age := time.Since(page.GeneratedAt)
			if age < 0 {
				age = 0
			}
			c.Header("Age", strconv.Itoa(int(age/time.Second)))
		}
		c.Data(http.StatusOK, htmlContentType, buf.Bytes())
	}
}
