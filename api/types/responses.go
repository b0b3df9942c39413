package types

import (
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/player"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// StaticPathsResponse lists the pages generated ahead of time
type StaticPathsResponse struct {
	BaseResponse
	Paths    []episodes.Path       `json:"paths"`
	Fallback episodes.FallbackMode `json:"fallback" example:"blocking"`
	Count    int                   `json:"count"`
}

// EpisodePageResponse carries the props an episode page renders from
type EpisodePageResponse struct {
	BaseResponse
	Episode     *models.Episode `json:"episode"`
	Revalidate  int             `json:"revalidate" example:"86400"` // Seconds
	GeneratedAt time.Time       `json:"generatedAt"`
}

// RevalidateResponse acknowledges an on-demand revalidation
type RevalidateResponse struct {
	BaseResponse
	Slug string `json:"slug" example:"a-importancia-da-contribuicao-em-open-source"`
}

// PlayResponse is returned by the play endpoint for JSON clients
type PlayResponse struct {
	BaseResponse
	Episode   *models.Episode `json:"episode"`
	StartedAt time.Time       `json:"startedAt"`
}

// PlayerResponse reports the current playback state
type PlayerResponse struct {
	BaseResponse
	Playing    bool           `json:"playing"`
	NowPlaying *player.Entry  `json:"nowPlaying,omitempty"`
	History    []player.Entry `json:"history"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string                 `json:"timestamp"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// VersionResponse for the root endpoint
type VersionResponse struct {
	BuildInfo
	Name        string `json:"name" example:"Podcastr"`
	Description string `json:"description"`
	Status      string `json:"status" example:"running"`
}
