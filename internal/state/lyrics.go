package state

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/llehouerou/lrctoolbox/internal/db"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
)

var _ lyrics.Cache = (*Cache)(nil)

// Entry is one cached lyrics document.
type Entry struct {
	Artist    string
	Title     string
	Album     string
	LRC       string
	FetchedAt time.Time
}

// Keys are case and surrounding-space insensitive.
func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup returns the cached LRC text for a track.
func (c *Cache) Lookup(artist, title string) (string, bool, error) {
	e, err := c.Get(artist, title)
	if err != nil || e == nil {
		return "", false, err
	}
	return e.LRC, true, nil
}

// Store caches lrc for a track, replacing any previous entry.
func (c *Cache) Store(artist, title, album, lrc string) error {
	return c.Put(Entry{
		Artist:    artist,
		Title:     title,
		Album:     album,
		LRC:       lrc,
		FetchedAt: c.now(),
	})
}

// Put writes e, replacing any entry for the same track.
func (c *Cache) Put(e Entry) error {
	return db.WithTx(c.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			DELETE FROM lyrics_cache WHERE artist_key = ? AND title_key = ?
		`, key(e.Artist), key(e.Title)); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO lyrics_cache (artist_key, title_key, artist, title, album, lrc, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, key(e.Artist), key(e.Title), e.Artist, e.Title, db.NullString(e.Album), e.LRC, e.FetchedAt.Unix())
		return err
	})
}

// Get returns the entry for a track, or nil when none is cached.
func (c *Cache) Get(artist, title string) (*Entry, error) {
	row := c.db.QueryRow(`
		SELECT artist, title, album, lrc, fetched_at
		FROM lyrics_cache
		WHERE artist_key = ? AND title_key = ?
	`, key(artist), key(title))

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns cached entries, most recent first. limit <= 0 returns all.
func (c *Cache) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := c.db.Query(`
		SELECT artist, title, album, lrc, fetched_at
		FROM lyrics_cache
		ORDER BY fetched_at DESC, artist_key, title_key
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Delete removes the entry for a track. It reports whether one existed.
func (c *Cache) Delete(artist, title string) (bool, error) {
	res, err := c.db.Exec(`
		DELETE FROM lyrics_cache WHERE artist_key = ? AND title_key = ?
	`, key(artist), key(title))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of cached entries.
func (c *Cache) Count() (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM lyrics_cache`).Scan(&n)
	return n, err
}

// Clear removes every entry and returns how many were removed.
func (c *Cache) Clear() (int, error) {
	res, err := c.db.Exec(`DELETE FROM lyrics_cache`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e         Entry
		album     sql.NullString
		fetchedAt int64
	)
	if err := s.Scan(&e.Artist, &e.Title, &album, &e.LRC, &fetchedAt); err != nil {
		return nil, err
	}
	e.Album = db.NullStringValue(album)
	e.FetchedAt = time.Unix(fetchedAt, 0)
	return &e, nil
}
