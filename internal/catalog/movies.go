package catalog

import "github.com/Clark-Hu/movienest/internal/domain"

var defaultMovies = []domain.Movie{
	{
		ID:          1,
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Description: "A mind-bending thriller",
	},
	{
		ID:          2,
		Title:       "The Matrix",
		Genre:       "Sci-Fi",
		Description: "A hacker learns the world he knows is a simulation",
	},
	{
		ID:          3,
		Title:       "Spirited Away",
		Genre:       "Animation",
		Description: "A girl wanders into a world of spirits",
	},
	{
		ID:          4,
		Title:       "Interstellar",
		Genre:       "Sci-Fi",
		Description: "Space adventure",
	},
}

// Default returns the canonical MovieNest catalog.
func Default() *Catalog {
	c, err := New(defaultMovies)
	if err != nil {
		panic("catalog: invalid default data: " + err.Error())
	}
	return c
}
