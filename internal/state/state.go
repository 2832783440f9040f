// Package state persists lyrics fetched from lrclib so repeated lookups
// stay offline.
package state

import (
	"database/sql"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/lrctoolbox/internal/db"
)

const (
	appName    = "lrctoolbox"
	dbFileName = "cache.db"
)

// Cache is the SQLite-backed lyrics cache.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the cache in the user's XDG cache directory.
func Open() (*Cache, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens the cache stored at path. db.Memory gives a throwaway cache.
func OpenPath(path string) (*Cache, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Cache{db: conn, now: time.Now}, nil
}

// DefaultPath returns the cache database location, creating its directory.
func DefaultPath() (string, error) {
	return xdg.CacheFile(filepath.Join(appName, dbFileName))
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) DB() *sql.DB {
	return c.db
}
