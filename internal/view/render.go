package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"propellus-site/internal/carousel"
	"propellus-site/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SectionView is what a section template receives.
type SectionView struct {
	Name     string
	Template string
	Speed    float64
	Status
}

// NavLink is one entry of the site navigation.
type NavLink struct {
	Path    string
	Title   string
	Current bool
}

// PageView is what the layout template receives.
type PageView struct {
	Path     string
	Title    string
	Nav      []NavLink
	Sections []template.HTML
}

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// TitleCase capitalises every word of s.
func TitleCase(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(s)
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"richtext":  RichTextHTML,
		"title":     TitleCase,
		"duplicate": carousel.Duplicate[entity.Slide],
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// templateFor picks the template of a section view from its state.
func templateFor(v SectionView) string {
	switch {
	case v.State == StateFailed:
		return "placeholder-failed"
	case v.State != StateReady:
		return "placeholder-loading"
	case v.Data == nil || v.Data.IsEmpty():
		return "placeholder-empty"
	default:
		return "section-" + v.Template
	}
}

// RenderSection renders one section fragment.
func (r *Renderer) RenderSection(v SectionView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, templateFor(v), v); err != nil {
		return "", fmt.Errorf("render section %s: %w", v.Name, err)
	}
	// #nosec G203 -- produced by html/template
	return template.HTML(buf.String()), nil
}

// RenderPage writes a full document.
func (r *Renderer) RenderPage(w io.Writer, p PageView) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		return fmt.Errorf("render page %s: %w", p.Path, err)
	}
	return nil
}
