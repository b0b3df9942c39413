package cmd

import (
	"fmt"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/render"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/player"
	"github.com/killallgit/podcastr/pkg/config"
	"github.com/sirupsen/logrus"
)

// buildDependencies wires the services shared by serve and generate.
// cleanup releases the cache and database and is safe to call once.
func buildDependencies(cfg *config.Config) (*types.Dependencies, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	renderer, err := render.New(render.Site{
		Name:   cfg.Site.Name,
		URL:    cfg.Site.URL,
		Locale: cfg.Site.Locale,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}

	var (
		db        *database.DB
		pageCache cache.Cache
	)

	switch cfg.Cache.Driver {
	case "sqlite":
		db, err = database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		sqlCache, err := cache.NewSQLCache(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		pageCache = sqlCache
	default:
		pageCache = cache.NewMemoryCache(cfg.Cache.Memory.MaxSizeMB, cfg.Cache.Memory.SweepInterval)
	}

	client := episodes.NewClient(episodes.ClientConfig{
		BaseURL:   cfg.Upstream.BaseURL,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.Timeout,
		RateLimit: cfg.Upstream.RateLimit,
		Burst:     cfg.Upstream.Burst,
	})

	service := episodes.NewService(client, episodes.NewTransformer(loc),
		episodes.WithCache(pageCache),
		episodes.WithStaticPathsLimit(cfg.Site.StaticPathsLimit),
		episodes.WithRevalidate(cfg.Cache.Revalidate),
	)

	session := player.NewSession(cfg.Player.HistorySize)

	logrus.WithFields(logrus.Fields{
		"upstream":    cfg.Upstream.BaseURL,
		"cacheDriver": cfg.Cache.Driver,
		"revalidate":  cfg.Cache.Revalidate,
	}).Debug("dependencies ready")

	deps := &types.Dependencies{
		DB:             db,
		EpisodeService: service,
		Renderer:       renderer,
		Player:         session,
		Playback:       session,
		PageCache:      pageCache,
		Build:          buildInfo(),
	}

	cleanup := func() {
		pageCache.Stop()
		if db != nil {
			if err := db.Close(); err != nil {
				logrus.WithError(err).Warn("closing database")
			}
		}
	}

	return deps, cleanup, nil
}
