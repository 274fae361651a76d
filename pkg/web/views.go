// Package web renders HTML pages from embedded templates.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewData contains the data passed to page templates during rendering.
type ViewData struct {
	Title string
	Data  any
}

// Page is a pre-parsed template bound to the data it renders with.
type Page struct {
	tmpl *template.Template
	data ViewData
}

// NewPage parses name from fsys once so template errors surface at startup.
func NewPage(fsys fs.FS, name string, data ViewData) (*Page, error) {
	tmpl, err := template.ParseFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("parse template: %s: %w", name, err)
	}
	return &Page{tmpl: tmpl, data: data}, nil
}

// Handler returns an HTTP handler that renders the page.
func (p *Page) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := p.tmpl.Execute(w, p.data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
