// Package db reads track datasets stored as SQLite databases. The database
// is an input, never a sink; spotscope persists nothing.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"

	"github.com/oakbery/spotscope-tui/internal/dataset"
	"github.com/oakbery/spotscope-tui/internal/models"
)

// DB wraps a read-only SQLite connection to a track dataset.
type DB struct {
	*sql.DB
	path string
}

// Open opens the dataset database and verifies the tracks table exists.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &dataset.DataSourceError{Path: path, Err: err}
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, &dataset.DataSourceError{Path: path, Err: err}
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.verifySchema(); err != nil {
		_ = db.Close()
		return nil, &dataset.DataSourceError{Path: path, Err: err}
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) verifySchema() error {
	var name string
	err := db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type='table' AND name='tracks'").Scan(&name)
	if err == sql.ErrNoRows {
		return fmt.Errorf("no tracks table")
	}
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	return nil
}

// LoadTracks reads every row of the tracks table, coercing NULL numeric
// fields to NaN so the filtering stage drops them, matching the CSV loader.
func (db *DB) LoadTracks(ctx context.Context) ([]models.Track, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT track_name, artist_name, track_popularity, artist_popularity,
		       artist_followers, track_duration_ms, explicit, artist_genres
		FROM tracks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var (
			trackName, artistName, explicit, genres sql.NullString
			trackPop, artistPop, followers, dur     sql.NullFloat64
		)
		if err := rows.Scan(&trackName, &artistName, &trackPop, &artistPop,
			&followers, &dur, &explicit, &genres); err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}

		tracks = append(tracks, models.Track{
			TrackName:        trackName.String,
			ArtistName:       artistName.String,
			TrackPopularity:  nullableFloat(trackPop),
			ArtistPopularity: nullableFloat(artistPop),
			ArtistFollowers:  nullableFloat(followers),
			DurationMS:       nullableFloat(dur),
			Explicit:         explicit.String == "True",
			Genres:           dataset.NormalizeGenres(genres.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}
	return tracks, nil
}

func nullableFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// LoadSQLite opens path, loads every track, and closes the database.
func LoadSQLite(ctx context.Context, path string) ([]models.Track, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.LoadTracks(ctx)
}
