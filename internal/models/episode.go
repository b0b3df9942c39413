package models

// Episode is the render-ready record for one episode page.
// It is built once per page generation and never mutated afterwards.
type Episode struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	Members          string `json:"members"`
	PublishedAt      string `json:"publishedAt"`
	Duration         int    `json:"duration"` // seconds
	DurationAsString string `json:"durationAsString"`
	Description      string `json:"description"`
	URL              string `json:"url"`
}
