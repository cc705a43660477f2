// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-polls/models"
)

// Page names
const (
	PageIndex   = "index.html"
	PageDetail  = "detail.html"
	PageResults = "results.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context holds the named values a page may render
type Context struct {
	LatestQuestionList []models.Question
	Question           *models.Question
	ErrorMessage       string
	Now                time.Time
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	// naturaltime renders t relative to the request clock
	"naturaltime": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"pluralize": func(n int64) string {
		if n == 1 {
			return ""
		}
		return "s"
	},
}

// NewRenderer parses every page together with the base layout
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageIndex, PageDetail, PageResults} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// MustNewRenderer is NewRenderer for package-level setup; the templates are
// embedded so a parse failure is a build defect
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes a page into w. Output is buffered so a template error
// never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, page string, ctx Context) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", ctx); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
