// Package config loads the site composition: which pages exist, which
// sections they render in which order, and how their carousels move.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	validate "propellus-site/internal/pkg/config"
	envconfig "propellus-site/pkg/config"

	"gopkg.in/yaml.v3"
)

// DefaultCarouselSpeed is used when neither the section nor the site sets one.
const DefaultCarouselSpeed = 30.0

// Template kinds a section may be rendered with.
const (
	TemplateHero     = "hero"
	TemplateText     = "text"
	TemplateCards    = "cards"
	TemplateCarousel = "carousel"
	TemplateLogos    = "logos"
	TemplateClauses  = "clauses"
)

var templateKinds = []string{
	TemplateHero, TemplateText, TemplateCards, TemplateCarousel, TemplateLogos, TemplateClauses,
}

// ErrInvalidSite is wrapped by every validation failure.
var ErrInvalidSite = errors.New("invalid site config")

//go:embed site.yaml
var defaultSite []byte

// Site is the parsed site file.
type Site struct {
	Carousel CarouselConfig `yaml:"carousel"`
	Pages    []Page         `yaml:"pages"`
}

// CarouselConfig holds site-wide carousel settings.
type CarouselConfig struct {
	DefaultSpeed float64 `yaml:"default_speed"`
}

// Page is one rendered route.
type Page struct {
	Path     string       `yaml:"path"`
	Title    string       `yaml:"title"`
	Sections []PageSection `yaml:"sections"`
}

// PageSection places a catalog section on a page.
type PageSection struct {
	Name     string  `yaml:"name"`
	Template string  `yaml:"template"`
	Speed    float64 `yaml:"speed,omitempty"`
}

// Page returns the page registered at path.
func (s *Site) Page(path string) (Page, bool) {
	for _, p := range s.Pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// SpeedFor returns the carousel speed of a section, falling back to the
// site default and then DefaultCarouselSpeed.
func (s *Site) SpeedFor(ps PageSection) float64 {
	switch {
	case ps.Speed > 0:
		return ps.Speed
	case s.Carousel.DefaultSpeed > 0:
		return s.Carousel.DefaultSpeed
	default:
		return DefaultCarouselSpeed
	}
}

// Parse decodes and validates a site file against the known section names.
func Parse(data []byte, known []string) (*Site, error) {
	site, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := site.Validate(known); err != nil {
		return nil, err
	}
	return site, nil
}

// ReadFile decodes a site file without validating it.
func ReadFile(path string) (*Site, error) {
	// #nosec G304 -- path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}
	return &site, nil
}

// Default returns the embedded site composition.
func Default(known []string) (*Site, error) {
	return Parse(defaultSite, known)
}

// Load reads the file named by SITE_CONFIG_PATH, or the embedded default
// when the variable is unset.
func Load(known []string) (*Site, error) {
	path := envconfig.GetEnvString("SITE_CONFIG_PATH", "")
	if path == "" {
		return Default(known)
	}
	site, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := site.Validate(known); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate reports every problem in the site file at once.
func (s *Site) Validate(known []string) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSite}, args...)...))
	}

	if s.Carousel.DefaultSpeed != 0 {
		if err := validate.ValidatePositiveFloat(s.Carousel.DefaultSpeed); err != nil {
			fail("carousel.default_speed: %v", err)
		}
	}
	if len(s.Pages) == 0 {
		fail("no pages defined")
	}

	paths := make(map[string]bool, len(s.Pages))
	for i, p := range s.Pages {
		if !strings.HasPrefix(p.Path, "/") {
			fail("pages[%d]: path %q must start with /", i, p.Path)
		}
		if paths[p.Path] {
			fail("pages[%d]: duplicate path %q", i, p.Path)
		}
		paths[p.Path] = true

		for j, ps := range p.Sections {
			where := fmt.Sprintf("pages[%d].sections[%d]", i, j)
			if !slices.Contains(known, ps.Name) {
				fail("%s: unknown section %q", where, ps.Name)
			}
			if !slices.Contains(templateKinds, ps.Template) {
				fail("%s: unknown template %q", where, ps.Template)
			}
			if ps.Speed != 0 {
				if err := validate.ValidatePositiveFloat(ps.Speed); err != nil {
					fail("%s: speed: %v", where, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}
