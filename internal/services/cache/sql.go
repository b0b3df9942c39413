package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLCache persists page entries in the page_cache table so generated pages
// survive restarts. Expired rows are treated as misses and removed on read.
type SQLCache struct {
	db    *database.DB
	now   func() time.Time
	stats CacheStats
}

// NewSQLCache migrates the page cache table and returns a store over it
func NewSQLCache(db *database.DB) (*SQLCache, error) {
	if db == nil || db.DB == nil {
		return nil, fmt.Errorf("sql cache requires a database")
	}
	if err := db.Migrate(); err != nil {
		return nil, err
	}
	return &SQLCache{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (sc *SQLCache) Get(ctx context.Context, key string) ([]byte, bool) {
	var entry models.PageCacheEntry
	err := sc.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("key", key).Warn("page cache read failed")
		}
		atomic.AddInt64(&sc.stats.Misses, 1)
		return nil, false
	}

	if entry.Expired(sc.now()) {
		_ = sc.Delete(ctx, key)
		atomic.AddInt64(&sc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&sc.stats.Hits, 1)
	return entry.Value, true
}

func (sc *SQLCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	entry := models.PageCacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: sc.now().Add(ttl),
	}

	err := sc.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("storing page cache entry %q: %w", key, err)
	}

	atomic.AddInt64(&sc.stats.Sets, 1)
	return nil
}

func (sc *SQLCache) Delete(ctx context.Context, key string) error {
	result := sc.db.WithContext(ctx).Where("cache_key = ?", key).Delete(&models.PageCacheEntry{})
	if result.Error != nil {
		return fmt.Errorf("deleting page cache entry %q: %w", key, result.Error)
	}
	atomic.AddInt64(&sc.stats.Deletes, result.RowsAffected)
	return nil
}

func (sc *SQLCache) Clear(ctx context.Context) error {
	err := sc.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PageCacheEntry{}).Error
	if err != nil {
		return fmt.Errorf("clearing page cache: %w", err)
	}
	return nil
}

func (sc *SQLCache) Has(ctx context.Context, key string) bool {
	var count int64
	err := sc.db.WithContext(ctx).Model(&models.PageCacheEntry{}).
		Where("cache_key = ? AND expires_at > ?", key, sc.now()).
		Count(&count).Error
	return err == nil && count > 0
}

// Purge removes every expired row and reports how many were dropped
func (sc *SQLCache) Purge(ctx context.Context) (int64, error) {
	result := sc.db.WithContext(ctx).Where("expires_at <= ?", sc.now()).Delete(&models.PageCacheEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("purging page cache: %w", result.Error)
	}
	atomic.AddInt64(&sc.stats.Evictions, result.RowsAffected)
	return result.RowsAffected, nil
}

func (sc *SQLCache) Stats() CacheStats {
	var count int64
	sc.db.Model(&models.PageCacheEntry{}).Count(&count)

	return CacheStats{
		Hits:      atomic.LoadInt64(&sc.stats.Hits),
		Misses:    atomic.LoadInt64(&sc.stats.Misses),
		Sets:      atomic.LoadInt64(&sc.stats.Sets),
		Deletes:   atomic.LoadInt64(&sc.stats.Deletes),
		Evictions: atomic.LoadInt64(&sc.stats.Evictions),
		Size:      count,
	}
}

// Stop is a no-op; the database is owned by the caller
func (sc *SQLCache) Stop() {}
