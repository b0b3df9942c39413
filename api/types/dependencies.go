package types

import (
	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/render"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/player"
)

// PlaybackState reports what the player is doing
type PlaybackState interface {
	NowPlaying() (player.Entry, bool)
	History() []player.Entry
}

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string `json:"version" example:"1.0.0"`
	GitCommit string `json:"commit" example:"abc1234"`
	BuildTime string `json:"buildTime"`
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	EpisodeService episodes.EpisodeService
	Renderer       *render.Renderer
	Player         player.Player
	Playback       PlaybackState
	PageCache      cache.Cache
	Build          BuildInfo
}
