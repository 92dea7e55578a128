package service

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/user/flicks/internal/catalog"
	"github.com/user/flicks/internal/model"
	"github.com/user/flicks/internal/utils"
)

// MovieService is the read-only catalog surface consumed by the HTTP layer.
// Production and test variants are composed at construction time.
type MovieService interface {
	Search(criteria model.SearchCriteria) []model.Movie
	GetAll() []model.Movie
	GetByID(id int64) (model.Movie, bool)
	AllGenres() []string
}

type movieService struct {
	catalog *catalog.Catalog
	cache   *utils.SearchCache[[]model.Movie]
	group   singleflight.Group
}

// NewMovieService wraps an immutable catalog with a TTL'd LRU cache over
// search results. Concurrent identical cache misses are collapsed into a
// single filter pass.
func NewMovieService(cat *catalog.Catalog, cacheSize int, cacheTTL time.Duration) MovieService {
	return &movieService{
		catalog: cat,
		cache:   utils.NewSearchCache[[]model.Movie](cacheSize, cacheTTL),
	}
}

// Search filters the catalog by the active criteria, preserving catalog
// order. A criterion only becomes active after normalization: name and genre
// are trimmed and must be non-empty, the id must be positive. No active
// criteria means "list all". An empty result is a normal outcome, not an
// error.
func (s *movieService) Search(criteria model.SearchCriteria) []model.Movie {
	name := strings.TrimSpace(criteria.Name)
	genre := strings.TrimSpace(criteria.Genre)
	id := criteria.ID

	if name == "" && genre == "" && id <= 0 {
		return s.GetAll()
	}

	key := searchKey(name, id, genre)
	if hit, ok := s.cache.Get(key); ok {
		return hit
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		results := filterMovies(s.catalog.Movies(), name, id, genre)
		s.cache.Set(key, results)
		return results, nil
	})
	return v.([]model.Movie)
}

// filterMovies applies the criteria as successive AND passes. A non-positive
// id is treated as absent here; the API boundary rejects it with a 400
// before ever calling in, and must not rely on this fallback.
func filterMovies(movies []model.Movie, name string, id int64, genre string) []model.Movie {
	nameFold := strings.ToLower(name)
	genreFold := strings.ToLower(genre)

	results := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if id > 0 && m.ID != id {
			continue
		}
		if nameFold != "" && !strings.Contains(strings.ToLower(m.MovieName), nameFold) {
			continue
		}
		if genreFold != "" && !strings.Contains(strings.ToLower(m.Genre), genreFold) {
			continue
		}
		results = append(results, m)
	}
	return results
}

func searchKey(name string, id int64, genre string) string {
	return strings.ToLower(name) + "|" + strconv.FormatInt(id, 10) + "|" + strings.ToLower(genre)
}

// GetAll returns the full catalog in load order. The slice is a fresh copy,
// so callers may do what they like with it.
func (s *movieService) GetAll() []model.Movie {
	movies := s.catalog.Movies()
	out := make([]model.Movie, len(movies))
	copy(out, movies)
	return out
}

// GetByID is the keyed detail lookup. Non-positive ids never match.
func (s *movieService) GetByID(id int64) (model.Movie, bool) {
	if id <= 0 {
		return model.Movie{}, false
	}
	return s.catalog.ByID(id)
}

// AllGenres returns the sorted, duplicate-free genre labels of the catalog.
func (s *movieService) AllGenres() []string {
	return s.catalog.Genres()
}
