// Package dataset loads and filters the track dataset feeding the
// aggregation pipeline.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/oakbery/spotscope-tui/internal/models"
)

// Columns the loader requires. Extra columns are ignored.
var requiredColumns = []string{
	"track_name",
	"artist_name",
	"track_popularity",
	"artist_popularity",
	"artist_followers",
	"track_duration_ms",
	"explicit",
	"artist_genres",
}

// LoadCSV reads the dataset file and returns one coerced Track per data
// row. A missing file or a header lacking required columns yields a
// *DataSourceError. Numeric fields that fail coercion are kept as NaN for
// the filtering stage; they are never repaired.
func LoadCSV(path string) ([]models.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	tracks, err := ReadCSV(f)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	return tracks, nil
}

// ReadCSV parses CSV dataset content from r.
func ReadCSV(r io.Reader) ([]models.Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is validated against the header

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var tracks []models.Track
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) < len(header) {
			// Short row: treat missing cells as absent values.
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		tracks = append(tracks, coerceRow(row, cols))
	}
	return tracks, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// coerceRow converts one CSV row into a typed Track. Numeric coercion
// failures yield NaN so validity can be judged per metric downstream.
func coerceRow(row []string, cols map[string]int) models.Track {
	return models.Track{
		TrackName:        row[cols["track_name"]],
		ArtistName:       row[cols["artist_name"]],
		TrackPopularity:  coerceFloat(row[cols["track_popularity"]]),
		ArtistPopularity: coerceFloat(row[cols["artist_popularity"]]),
		ArtistFollowers:  coerceFloat(row[cols["artist_followers"]]),
		DurationMS:       coerceFloat(row[cols["track_duration_ms"]]),
		Explicit:         row[cols["explicit"]] == "True",
		Genres:           NormalizeGenres(row[cols["artist_genres"]]),
	}
}

func coerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
