package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Clark-Hu/movienest/internal/catalog"
	"github.com/Clark-Hu/movienest/internal/domain"
	"github.com/Clark-Hu/movienest/internal/view"
)

const (
	homeBackURL  = "/"
	movieBackURL = "/Movie/Index"
)

type movieListResponse struct {
	Message string         `json:"message,omitempty"`
	Items   []domain.Movie `json:"items"`
}

type movieIndexView struct {
	Title  string
	Movies []domain.Movie
}

type movieDetailsView struct {
	Title   string
	Movie   domain.Movie
	BackURL string
}

func (s *Server) handleMovieIndex(w http.ResponseWriter, r *http.Request) {
	movies := s.catalog.List()
	if wantsJSON(r) {
		s.respondJSON(w, http.StatusOK, movieListResponse{Items: movies})
		return
	}
	s.render(w, http.StatusOK, view.PageMovieIndex, movieIndexView{
		Title:  "Movies",
		Movies: movies,
	})
}

// handleDetails serves a single movie for both the Home and Movie routes.
func (s *Server) handleDetails(backURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseMovieID(chi.URLParam(r, "id"))
		if !ok {
			s.handleNotFound(w, r)
			return
		}

		movie, err := s.catalog.Get(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				s.handleNotFound(w, r)
				return
			}
			s.logger.Printf("fetch movie %d failed: %v", id, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if wantsJSON(r) {
			s.respondJSON(w, http.StatusOK, movie)
			return
		}
		s.render(w, http.StatusOK, view.PageMovieDetails, movieDetailsView{
			Title:   movie.Title,
			Movie:   movie,
			BackURL: backURL,
		})
	}
}

// parseMovieID accepts only positive base-10 integers written with ASCII digits;
// signs and whitespace are rejected.
func parseMovieID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
