// Package entity defines the view-model types served by the site: content
// sections, rich text, media references and carousel slides. Values are built
// fresh for every request and are never persisted.
package entity

import "encoding/json"

// Section is one named region of a page (hero, mission, team, ...), flattened
// from the CMS document that backs it.
type Section struct {
	Name    string            `json:"name"`
	Title   string            `json:"title"`
	Heading RichText          `json:"heading"`
	Body    RichText          `json:"body"`
	Summary string            `json:"summary"`
	Bullets []string          `json:"bullets"`
	Media   []MediaRef        `json:"media"`
	Link    *Link             `json:"link,omitempty"`
	Fields  map[string]string `json:"fields"`
	Items   []Section         `json:"items"`
	Slides  []Slide           `json:"slides"`
}

// MediaRef points at an image hosted by the content repository.
// URL is always absolute after resolution, or empty when the CMS had none.
type MediaRef struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Slide is one card of a looping carousel.
type Slide struct {
	Src         MediaRef `json:"src"`
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
}

// Link is a call-to-action label and target.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NewSection returns a section with every collection initialised, so that an
// empty section still encodes with a stable shape.
func NewSection(name string) *Section {
	return &Section{
		Name:    name,
		Heading: RichText{},
		Body:    RichText{},
		Bullets: []string{},
		Media:   []MediaRef{},
		Fields:  map[string]string{},
		Items:   []Section{},
		Slides:  []Slide{},
	}
}

// Field returns the named scalar extra, or "" when absent.
func (s Section) Field(key string) string {
	if s.Fields == nil {
		return ""
	}
	return s.Fields[key]
}

// SetField records a scalar extra. Empty values are skipped so that templates
// can rely on presence meaning "has content".
func (s *Section) SetField(key, value string) {
	if value == "" {
		return
	}
	if s.Fields == nil {
		s.Fields = map[string]string{}
	}
	s.Fields[key] = value
}

// FirstMedia returns the first media reference, or the zero value.
func (s Section) FirstMedia() MediaRef {
	if len(s.Media) == 0 {
		return MediaRef{}
	}
	return s.Media[0]
}

// HeadingText is the plain-text form of Heading.
func (s Section) HeadingText() string {
	return s.Heading.Text()
}

// IsEmpty reports whether the section carries no displayable content at all.
func (s Section) IsEmpty() bool {
	return s.Title == "" && s.Heading.Text() == "" && s.Body.Text() == "" &&
		s.Summary == "" && len(s.Bullets) == 0 && len(s.Media) == 0 &&
		len(s.Items) == 0 && len(s.Slides) == 0 && len(s.Fields) == 0 && s.Link == nil
}

// MarshalJSON encodes nil collections as empty ones.
func (s Section) MarshalJSON() ([]byte, error) {
	type plain Section
	p := plain(s)
	if p.Heading == nil {
		p.Heading = RichText{}
	}
	if p.Body == nil {
		p.Body = RichText{}
	}
	if p.Bullets == nil {
		p.Bullets = []string{}
	}
	if p.Media == nil {
		p.Media = []MediaRef{}
	}
	if p.Fields == nil {
		p.Fields = map[string]string{}
	}
	if p.Items == nil {
		p.Items = []Section{}
	}
	if p.Slides == nil {
		p.Slides = []Slide{}
	}
	return json.Marshal(p)
}
