// Package view renders the MovieNest HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// Page names understood by Renderer.Render.
const (
	PageHomeIndex    = "home/index"
	PageHomePrivacy  = "home/privacy"
	PageHomeError    = "home/error"
	PageMovieIndex   = "movie/index"
	PageMovieDetails = "movie/details"
	PageNotFound     = "notfound"

	PageTooManyRequests = "ratelimited"
)

const baseLayout = "templates/layout/base.html"

// ErrResponseWritten wraps failures that happen after the status line was sent;
// callers must not try to write another response.
var ErrResponseWritten = errors.New("view: response already written")

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{
	PageHomeIndex,
	PageHomePrivacy,
	PageHomeError,
	PageMovieIndex,
	PageMovieDetails,
	PageNotFound,
	PageTooManyRequests,
}

// Renderer holds every page pre-parsed against the shared base layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses all embedded templates. It fails if any page is missing or malformed.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.ParseFS(templateFS, baseLayout, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes page with data and writes it with the given status. Output is
// buffered so a failing template never produces a partial response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrResponseWritten, page, err)
	}
	return nil
}

// StaticHandler serves the embedded assets. Mount it under "/static/".
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("view: embedded static filesystem: " + err.Error())
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, req)
	})
}
