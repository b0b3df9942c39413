package episodes

import (
	"context"

	"github.com/killallgit/podcastr/internal/models"
)

// EpisodeFetcher reads episodes from the external episodes API
type EpisodeFetcher interface {
	// ListLatest returns up to limit episodes, most recently published first
	ListLatest(ctx context.Context, limit int) ([]APIEpisode, error)
	// GetBySlug returns one episode or a NotFoundError
	GetBySlug(ctx context.Context, slug string) (*APIEpisode, error)
}

// EpisodeService builds the data behind episode pages
type EpisodeService interface {
	StaticPaths(ctx context.Context) (*StaticPaths, error)
	LoadEpisode(ctx context.Context, slug string) (*models.Episode, error)
	GetEpisodePage(ctx context.Context, slug string) (*Page, error)
	Revalidate(ctx context.Context, slug string) error
}
