package dataset

import "strings"

// genreCutset holds the punctuation stripped from genre tokens: list
// brackets and quoting left over from the upstream export format, e.g.
// "['pop' / 'rock']".
const genreCutset = "[]'\" "

// NormalizeGenres splits a raw genre field into clean genre tokens. The
// field arrives as a stringified list; tokens are separated by commas or
// slashes, wrapped in quotes and brackets. Empty tokens are discarded.
func NormalizeGenres(raw string) []string {
	if raw == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/'
	})

	genres := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.Trim(f, genreCutset)
		if token != "" {
			genres = append(genres, token)
		}
	}
	if len(genres) == 0 {
		return nil
	}
	return genres
}
