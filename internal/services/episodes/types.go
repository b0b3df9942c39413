package episodes

import (
	"time"

	"github.com/killallgit/podcastr/internal/models"
)

// APIEpisode is an episode exactly as the episodes API returns it
type APIEpisode struct {
	ID          interface{} `json:"id"` // string slug, occasionally numeric
	Title       string      `json:"title"`
	Members     string      `json:"members"`
	PublishedAt string      `json:"published_at"`
	Thumbnail   string      `json:"thumbnail"`
	Description string      `json:"description"`
	File        APIFile     `json:"file"`
}

// APIFile is the media attachment of an APIEpisode
type APIFile struct {
	URL      string      `json:"url"`
	Type     string      `json:"type,omitempty"`
	Duration interface{} `json:"duration"` // seconds, number or numeric string
}

// FallbackMode tells the router what to do for slugs outside the
// precomputed path set
type FallbackMode string

const (
	// FallbackBlocking generates unknown pages on first request and holds
	// the request until generation finishes
	FallbackBlocking FallbackMode = "blocking"
)

// PathParams are the route parameters of one precomputed page
type PathParams struct {
	Slug string `json:"slug"`
}

// Path describes one page to generate ahead of time
type Path struct {
	Params PathParams `json:"params"`
}

// StaticPaths is the result of path enumeration
type StaticPaths struct {
	Paths    []Path       `json:"paths"`
	Fallback FallbackMode `json:"fallback"`
}

// Slugs returns the slugs of every path, in order
func (sp *StaticPaths) Slugs() []string {
	slugs := make([]string, len(sp.Paths))
	for i, p := range sp.Paths {
		slugs[i] = p.Params.Slug
	}
	return slugs
}

// Page is the cached, render-ready data of one episode page
type Page struct {
	Episode     *models.Episode `json:"episode"`
	Revalidate  int             `json:"revalidate"` // freshness window in seconds
	GeneratedAt time.Time       `json:"generatedAt"`
}
