package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Initialize opens the sqlite database backing the persistent page cache
func Initialize(dbPath string, verbose bool) (*DB, error) {
	inMemory := dbPath == "" || dbPath == ":memory:"
	if inMemory {
		dbPath = ":memory:"
	} else if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Migrate creates or updates every table the service owns
func (db *DB) Migrate() error {
	if err := db.DB.AutoMigrate(&models.PageCacheEntry{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	logrus.WithField("tables", []string{models.PageCacheEntry{}.TableName()}).Info("database migrated")
	return nil
}

// Rollback drops every table the service owns
func (db *DB) Rollback() error {
	if err := db.DB.Migrator().DropTable(&models.PageCacheEntry{}); err != nil {
		return fmt.Errorf("dropping tables failed: %w", err)
	}
	logrus.WithField("tables", []string{models.PageCacheEntry{}.TableName()}).Info("database rolled back")
	return nil
}

// TableStatus reports, per owned table, whether it exists
func (db *DB) TableStatus() map[string]bool {
	return map[string]bool{
		models.PageCacheEntry{}.TableName(): db.DB.Migrator().HasTable(&models.PageCacheEntry{}),
	}
}
