package player

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// Get reports what is playing
// @Summary      Playback state
// @Description  Returns the episode currently playing and the earlier ones, newest first
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerResponse "Playback state"
// @Failure      503 {object} types.ErrorResponse "Player not available"
// @Router       /api/v1/player [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Playback == nil {
			types.SendError(c, apperrors.New(apperrors.ErrCodeServiceDown, "Player not available"))
			return
		}

		response := types.PlayerResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Nothing playing"},
			History:      deps.Playback.History(),
		}
		if entry, ok := deps.Playback.NowPlaying(); ok {
			response.Playing = true
			response.NowPlaying = &entry
			response.Message = "Playing"
		}

		types.SendSuccess(c, response)
	}
}
