package models

import (
	"time"
)

// PageCacheEntry is a persisted page cache row, keyed by cache key
type PageCacheEntry struct {
	Key       string    `gorm:"primaryKey;column:cache_key;size:255" json:"key"`
	Value     []byte    `gorm:"column:payload;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the PageCacheEntry model
func (PageCacheEntry) TableName() string {
	return "page_cache"
}

// Expired reports whether the entry is past its freshness window at now
func (e *PageCacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
