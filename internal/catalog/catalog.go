package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Clark-Hu/movienest/internal/domain"
)

var (
	// ErrNotFound indicates the requested movie does not exist in the catalog.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidMovie is wrapped by New when an entry breaks a catalog invariant.
	ErrInvalidMovie = errors.New("catalog: invalid movie")
)

// Catalog is an immutable, ordered collection of movies. It is built once at
// startup and shared read-only across requests.
type Catalog struct {
	movies []domain.Movie
	byID   map[int64]int
}

// New validates the supplied movies and returns a catalog holding a private copy.
func New(movies []domain.Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: catalog must contain at least one movie", ErrInvalidMovie)
	}

	c := &Catalog{
		movies: make([]domain.Movie, len(movies)),
		byID:   make(map[int64]int, len(movies)),
	}
	for i, movie := range movies {
		if movie.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidMovie, movie.ID)
		}
		if strings.TrimSpace(movie.Title) == "" {
			return nil, fmt.Errorf("%w: movie %d has an empty title", ErrInvalidMovie, movie.ID)
		}
		if _, dup := c.byID[movie.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidMovie, movie.ID)
		}
		c.movies[i] = movie
		c.byID[movie.ID] = i
	}
	return c, nil
}

// List returns every movie in catalog order. The slice is freshly allocated.
func (c *Catalog) List() []domain.Movie {
	out := make([]domain.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Get returns the movie whose ID matches id, or ErrNotFound.
func (c *Catalog) Get(id int64) (domain.Movie, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Movie{}, ErrNotFound
	}
	return c.movies[idx], nil
}

// Len reports the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}
