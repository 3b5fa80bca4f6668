package catalog

import (
	"sort"
	"strings"

	"cinebook-tui/model"
)

// Catalog holds the static movie, theater and showtime reference data.
// It is read-only; the booking flow and the TUI only ever query it.
type Catalog struct {
	movies    []model.Movie
	theaters  []model.Theater
	showtimes map[int][]model.Showtime
}

// New returns a catalog populated with the built-in sample data.
func New() *Catalog {
	return &Catalog{
		movies:    sampleMovies,
		theaters:  sampleTheaters,
		showtimes: sampleShowtimes,
	}
}

// Movies returns every movie in the catalog.
func (c *Catalog) Movies() []model.Movie {
	out := make([]model.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Theaters returns every theater in the catalog.
func (c *Catalog) Theaters() []model.Theater {
	out := make([]model.Theater, len(c.theaters))
	copy(out, c.theaters)
	return out
}

// MovieByID looks up a movie by its identifier.
func (c *Catalog) MovieByID(id int) (model.Movie, bool) {
	for _, movie := range c.movies {
		if movie.Id == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

// TheaterByID looks up a theater by its identifier.
func (c *Catalog) TheaterByID(id int) (model.Theater, bool) {
	for _, theater := range c.theaters {
		if theater.Id == id {
			return theater, true
		}
	}
	return model.Theater{}, false
}

// ShowtimesFor returns the showtime list for a movie. Unknown movies
// yield an empty list.
func (c *Catalog) ShowtimesFor(movieID int) []model.Showtime {
	shows := c.showtimes[movieID]
	out := make([]model.Showtime, len(shows))
	copy(out, shows)
	return out
}

// SearchMovies returns movies whose title or genre contains the query,
// case-insensitively. An empty query returns the full list.
func (c *Catalog) SearchMovies(query string) []model.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Movies()
	}
	var out []model.Movie
	for _, movie := range c.movies {
		if strings.Contains(strings.ToLower(movie.Title), query) ||
			strings.Contains(strings.ToLower(movie.Genre), query) {
			out = append(out, movie)
		}
	}
	return out
}

// FilterMovies narrows the movie list by genre and language. Empty
// arguments mean no filtering on that attribute.
func (c *Catalog) FilterMovies(genre string, language string) []model.Movie {
	genre = strings.ToLower(strings.TrimSpace(genre))
	language = strings.TrimSpace(language)

	var out []model.Movie
	for _, movie := range c.movies {
		if genre != "" && !strings.Contains(strings.ToLower(movie.Genre), genre) {
			continue
		}
		if language != "" && !hasLanguage(movie.Languages, language) {
			continue
		}
		out = append(out, movie)
	}
	return out
}

// Genres returns the distinct genre tokens across all movies, sorted.
func (c *Catalog) Genres() []string {
	seen := map[string]bool{}
	var out []string
	for _, movie := range c.movies {
		for _, genre := range strings.Split(movie.Genre, ",") {
			genre = strings.TrimSpace(genre)
			if genre == "" || seen[genre] {
				continue
			}
			seen[genre] = true
			out = append(out, genre)
		}
	}
	sort.Strings(out)
	return out
}

// Languages returns the distinct languages across all movies, sorted.
func (c *Catalog) Languages() []string {
	seen := map[string]bool{}
	var out []string
	for _, movie := range c.movies {
		for _, language := range movie.Languages {
			if language == "" || seen[language] {
				continue
			}
			seen[language] = true
			out = append(out, language)
		}
	}
	sort.Strings(out)
	return out
}

func hasLanguage(languages []string, language string) bool {
	for _, l := range languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}
