package normalize

import (
	"propellus-site/internal/domain/entity"
)

// LandingHero maps landing-pages[0].herosection: two stacked headlines.
func (n Normalizer) LandingHero(doc Doc) *entity.Section {
	hero, ok := entryComponent(doc, "herosection")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionLandingHero)
	s.Title = str(hero, "heading1")
	s.Heading = entity.Paragraph(str(hero, "heading2"))
	return s
}

// TravelAgentsTeaser maps landing-pages[0].grow[0].
func (n Normalizer) TravelAgentsTeaser(doc Doc) *entity.Section {
	return n.teaser(doc, SectionTravelAgentsTeaser, "grow")
}

// OTAsTeaser maps landing-pages[0].otas[0].
func (n Normalizer) OTAsTeaser(doc Doc) *entity.Section {
	return n.teaser(doc, SectionOTAsTeaser, "otas")
}

// teaser maps a heading, a rich description whose list items become bullet
// points, and an illustration.
func (n Normalizer) teaser(doc Doc, name, path string) *entity.Section {
	c, ok := entryComponent(doc, path)
	if !ok {
		return nil
	}
	s := entity.NewSection(name)
	s.Heading = entity.Paragraph(str(c, "heading"))
	textBlock(s, c, "", "description")
	n.attach(s, c, "image", FormatOriginal, str(c, "heading"))
	return s
}

// Testimonials maps landing-pages[0].travllerslove.
func (n Normalizer) Testimonials(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTestimonials)
	for _, raw := range list(entry, "travllerslove") {
		item := entity.NewSection(SectionTestimonials)
		item.Title = str(raw, "author_name")
		item.Summary = plain(raw, "description")
		item.SetField("country", str(raw, "country_name"))
		n.attach(item, raw, "author_image", FormatThumbnail, item.Title)
		s.Items = append(s.Items, *item)
	}
	return s
}

// VisaSection maps landing-pages[0].visasection.
func (n Normalizer) VisaSection(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "visasection")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionVisaSection)
	s.Heading = entity.Paragraph(str(c, "heading"))
	n.attach(s, c, "image", FormatOriginal, str(c, "heading"))
	return s
}

// Travellers maps landing-pages[0].travellers. The description is a plain
// string on older entries and rich text on newer ones.
func (n Normalizer) Travellers(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTravellers)
	for _, raw := range list(entry, "travellers") {
		item := entity.NewSection(SectionTravellers)
		item.Title = str(raw, "travellername")
		item.Summary = plain(raw, "description")
		item.SetField("country", str(raw, "country"))
		s.Items = append(s.Items, *item)
	}
	return s
}
