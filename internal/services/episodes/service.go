package episodes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultStaticPathsLimit is how many of the latest episodes get
	// pages generated ahead of time
	DefaultStaticPathsLimit = 2
	// DefaultRevalidate is the freshness window of a generated page
	DefaultRevalidate = 24 * time.Hour
)

// Service implements EpisodeService
type Service struct {
	fetcher     EpisodeFetcher
	transformer *Transformer
	cache       cache.Cache
	keyGen      KeyGenerator
	group       singleflight.Group
	pathsLimit  int
	revalidate  time.Duration
	now         func() time.Time
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithCache stores generated pages in c. Without a cache every page
// request reaches the episodes API.
func WithCache(c cache.Cache) ServiceOption {
	return func(s *Service) {
		s.cache = c
	}
}

// WithStaticPathsLimit sets how many latest episodes are precomputed
func WithStaticPathsLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.pathsLimit = limit
		}
	}
}

// WithRevalidate sets the freshness window of generated pages
func WithRevalidate(window time.Duration) ServiceOption {
	return func(s *Service) {
		if window > 0 {
			s.revalidate = window
		}
	}
}

// NewService creates a new episode service with optional configuration
func NewService(fetcher EpisodeFetcher, transformer *Transformer, opts ...ServiceOption) *Service {
	if transformer == nil {
		transformer = NewTransformer(nil)
	}

	s := &Service{
		fetcher:     fetcher,
		transformer: transformer,
		keyGen:      NewKeyGenerator("page"),
		pathsLimit:  DefaultStaticPathsLimit,
		revalidate:  DefaultRevalidate,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StaticPaths lists the latest episodes and returns one path per id. Pages
// for any other slug are generated on first request.
func (s *Service) StaticPaths(ctx context.Context) (*StaticPaths, error) {
	list, err := s.fetcher.ListLatest(ctx, s.pathsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing latest episodes: %w", err)
	}

	paths := s.transformer.ToPaths(list)
	logrus.WithField("count", len(paths)).Debug("static paths enumerated")

	return &StaticPaths{
		Paths:    paths,
		Fallback: FallbackBlocking,
	}, nil
}

// LoadEpisode fetches one episode and reshapes it for rendering. It never
// consults the page cache.
func (s *Service) LoadEpisode(ctx context.Context, slug string) (*models.Episode, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, NewValidationError("slug", "cannot be empty")
	}

	raw, err := s.fetcher.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("fetching episode %q: %w", slug, err)
	}

	episode, err := s.transformer.ToEpisode(raw)
	if err != nil {
		return nil, fmt.Errorf("shaping episode %q: %w", slug, err)
	}

	return episode, nil
}

// GetEpisodePage returns the page data for slug, served from the cache
// while it is fresh. Concurrent misses for one slug share a single fetch.
func (s *Service) GetEpisodePage(ctx context.Context, slug string) (*Page, error) {
	key := s.keyGen.Page(slug)

	if page, ok := s.cached(ctx, key); ok {
		return page, nil
	}

	result, err, shared := s.group.Do(key, func() (interface{}, error) {
		// Waiters must not lose the result when the first caller goes away.
		genCtx := context.WithoutCancel(ctx)

		episode, err := s.LoadEpisode(genCtx, slug)
		if err != nil {
			return nil, err
		}

		page := &Page{
			Episode:     episode,
			Revalidate:  int(s.revalidate / time.Second),
			GeneratedAt: s.now().UTC(),
		}
		s.store(genCtx, key, page)

		return page, nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"slug":   slug,
		"shared": shared,
	}).Info("episode page generated")

	return result.(*Page), nil
}

// Revalidate drops the cached page for slug so the next request regenerates it
func (s *Service) Revalidate(ctx context.Context, slug string) error {
	if strings.TrimSpace(slug) == "" {
		return NewValidationError("slug", "cannot be empty")
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, s.keyGen.Page(slug)); err != nil {
		return fmt.Errorf("revalidating %q: %w", slug, err)
	}
	return nil
}

func (s *Service) cached(ctx context.Context, key string) (*Page, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, found := s.cache.Get(ctx, key)
	if !found {
		return nil, false
	}

	var page Page
	if err := json.Unmarshal(data, &page); err != nil || page.Episode == nil {
		logrus.WithField("key", key).Warn("discarding unreadable page cache entry")
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}

	return &page, true
}

func (s *Service) store(ctx context.Context, key string, page *Page) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(page)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("encoding page for cache")
		return
	}

	if err := s.cache.Set(ctx, key, data, s.revalidate); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storing page in cache")
	}
}
