package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/user/flicks/internal/model"
)

//go:embed data/movies.json data/reviews.json
var dataFS embed.FS

var validate = validator.New()

// Catalog is the fixed, ordered collection of all movies for the process
// lifetime. It is built once and read-only afterwards, so any number of
// requests may search it concurrently without locking.
type Catalog struct {
	movies []model.Movie
	byID   map[int64]int
	genres []string
}

// Load reads the movie data file at path and builds the catalog. An empty
// path falls back to the embedded default data.
func Load(path string) (*Catalog, error) {
	raw, err := readDataFile(path, "data/movies.json")
	if err != nil {
		return nil, fmt.Errorf("read movie data: %w", err)
	}

	var movies []model.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("parse movie data: %w", err)
	}

	return New(movies)
}

// New builds a catalog from an already-decoded movie list, preserving its
// order. Every movie must pass field validation and carry a unique id.
func New(movies []model.Movie) (*Catalog, error) {
	byID := make(map[int64]int, len(movies))
	seen := make(map[string]bool)
	genres := make([]string, 0, len(movies))

	for i, m := range movies {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("invalid movie at index %d: %w", i, err)
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %d", m.ID)
		}
		byID[m.ID] = i

		if !seen[m.Genre] {
			seen[m.Genre] = true
			genres = append(genres, m.Genre)
		}
	}
	sort.Strings(genres)

	return &Catalog{movies: movies, byID: byID, genres: genres}, nil
}

// Movies returns the catalog in load order. The slice is the catalog's
// backing store; callers must not modify it.
func (c *Catalog) Movies() []model.Movie {
	return c.movies
}

// ByID looks up a single movie by its id.
func (c *Catalog) ByID(id int64) (model.Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Movie{}, false
	}
	return c.movies[i], true
}

// Genres returns the distinct genre labels appearing in the catalog, sorted
// ascending. Compound labels like "Crime/Drama" are kept whole.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Len reports the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// LoadReviews reads the review data file at path (embedded default when
// empty) and groups the reviews by movie id.
func LoadReviews(path string) (map[int64][]model.Review, error) {
	raw, err := readDataFile(path, "data/reviews.json")
	if err != nil {
		return nil, fmt.Errorf("read review data: %w", err)
	}

	var reviews []model.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("parse review data: %w", err)
	}

	byMovie := make(map[int64][]model.Review)
	for _, r := range reviews {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], r)
	}
	return byMovie, nil
}

func readDataFile(path, embedded string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return dataFS.ReadFile(embedded)
	}
	return os.ReadFile(path)
}
