package episodes

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/sirupsen/logrus"
)

const htmlContentType = "text/html; charset=utf-8"

// renderErrorPage writes an HTML error page, falling back to plain text
// when no renderer is configured or the template fails
func renderErrorPage(c *gin.Context, deps *types.Dependencies, status int, message string) {
	if deps == nil || deps.Renderer == nil {
		c.String(status, "%d %s", status, message)
		return
	}

	var buf bytes.Buffer
	if err := deps.Renderer.RenderError(&buf, status, message); err != nil {
		logrus.WithError(err).Error("failed to render error page")
		c.String(status, "%d %s", status, message)
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}

func serviceUnavailable(c *gin.Context, deps *types.Dependencies) bool {
	if deps == nil || deps.EpisodeService == nil {
		renderErrorPage(c, deps, http.StatusServiceUnavailable, "Episode service not available")
		return true
	}
	return false
}
