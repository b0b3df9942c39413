package episodes

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/pkg/timefmt"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Transformer reshapes episodes API payloads into page data
type Transformer struct {
	location *time.Location
}

// NewTransformer creates a transformer that renders dates in loc
func NewTransformer(loc *time.Location) *Transformer {
	if loc == nil {
		loc = time.Local
	}
	return &Transformer{location: loc}
}

// ToEpisode builds the render-ready record for one API episode.
// The raw publish timestamp is not kept.
func (t *Transformer) ToEpisode(raw *APIEpisode) (*models.Episode, error) {
	if raw == nil {
		return nil, NewValidationError("episode", "missing")
	}

	id, err := episodeID(raw.ID)
	if err != nil {
		return nil, err
	}

	publishedAt, err := timefmt.ParsePublishedAt(raw.PublishedAt, t.location)
	if err != nil {
		return nil, NewValidationError("published_at", err.Error())
	}

	duration, err := coerceDuration(raw.File.Duration)
	if err != nil {
		return nil, err
	}

	return &models.Episode{
		ID:               id,
		Title:            raw.Title,
		Thumbnail:        raw.Thumbnail,
		Members:          raw.Members,
		PublishedAt:      timefmt.FormatPublishedAt(publishedAt, t.location),
		Duration:         duration,
		DurationAsString: timefmt.FormatDuration(duration),
		Description:      raw.Description,
		URL:              raw.File.URL,
	}, nil
}

// ToPaths maps listed episodes to page paths. Entries without an id are
// dropped.
func (t *Transformer) ToPaths(list []APIEpisode) []Path {
	return lo.FilterMap(list, func(item APIEpisode, index int) (Path, bool) {
		id, err := episodeID(item.ID)
		if err != nil {
			logrus.WithField("index", index).Warn("skipping listed episode without id")
			return Path{}, false
		}
		return Path{Params: PathParams{Slug: id}}, true
	})
}

func episodeID(raw interface{}) (string, error) {
	if raw == nil {
		return "", NewValidationError("id", "missing")
	}
	id, err := cast.ToStringE(raw)
	if err != nil {
		return "", NewValidationError("id", err.Error())
	}
	if strings.TrimSpace(id) == "" {
		return "", NewValidationError("id", "cannot be empty")
	}
	return id, nil
}

// coerceDuration accepts JSON numbers and numeric strings, truncating any
// fraction. Missing, non-numeric and negative values are rejected.
func coerceDuration(raw interface{}) (int, error) {
	if raw == nil {
		return 0, NewValidationError("file.duration", "missing")
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}

	seconds, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, NewValidationError("file.duration", fmt.Sprintf("not a number: %v", raw))
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, NewValidationError("file.duration", fmt.Sprintf("not a finite number: %v", raw))
	}
	if seconds < 0 {
		return 0, NewValidationError("file.duration", fmt.Sprintf("negative: %v", raw))
	}

	return int(math.Trunc(seconds)), nil
}
