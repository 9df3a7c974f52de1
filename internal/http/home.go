package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Clark-Hu/movienest/internal/domain"
	"github.com/Clark-Hu/movienest/internal/view"
)

// WelcomeMessage is shown above the catalog on the home page.
const WelcomeMessage = "Welcome to MovieNest 🎬"

type homeIndexView struct {
	Title   string
	Message string
	Movies  []domain.Movie
}

type staticView struct {
	Title string
}

type errorPageView struct {
	Title string
	Error domain.ErrorView
}

func (s *Server) handleHomeIndex(w http.ResponseWriter, r *http.Request) {
	movies := s.catalog.List()
	if wantsJSON(r) {
		s.respondJSON(w, http.StatusOK, movieListResponse{Message: WelcomeMessage, Items: movies})
		return
	}
	s.render(w, http.StatusOK, view.PageHomeIndex, homeIndexView{
		Title:   "Home",
		Message: WelcomeMessage,
		Movies:  movies,
	})
}

func (s *Server) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, view.PageHomePrivacy, staticView{Title: "Privacy Policy"})
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request) {
	ev := domain.ErrorView{RequestID: correlationID(r)}
	if wantsJSON(r) {
		s.respondJSON(w, http.StatusOK, ev)
		return
	}
	s.render(w, http.StatusOK, view.PageHomeError, errorPageView{
		Title: "Error",
		Error: ev,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		return
	}
	s.render(w, http.StatusNotFound, view.PageNotFound, staticView{Title: "Not Found"})
}

// correlationID prefers the id assigned by the RequestID middleware and falls
// back to a random UUID when the request never passed through it.
func correlationID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
