package normalize

import (
	"propellus-site/internal/domain/entity"
)

// InvestorsHero maps investors[0].investorsHero. The CMS field for the body
// is "Description" with a capital D.
func (n Normalizer) InvestorsHero(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "investorsHero")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionInvestorsHero)
	s.Heading = entity.Paragraph(str(c, "heading"))
	body := "Description"
	if !get(c, body).Exists() {
		body = "description"
	}
	textBlock(s, c, "", body)
	n.attach(s, c, "image", FormatOriginal, str(c, "heading"))
	return s
}

// InvestorsApproach maps investors[0].approach: two titles, a description
// and up to three images.
func (n Normalizer) InvestorsApproach(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "approach")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionInvestorsApproach)
	s.Title = str(c, "title1")
	s.Heading = entity.Paragraph(str(c, "title2"))
	textBlock(s, c, "", "description")
	for _, key := range []string{"image1", "image2", "image3"} {
		n.attach(s, c, key, FormatOriginal, s.Title)
	}
	return s
}

// InvestorsHeadings maps the investors[0].investorsheading list.
func (n Normalizer) InvestorsHeadings(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionInvestorsHeadings)
	for _, raw := range list(entry, "investorsheading") {
		item := entity.NewSection(SectionInvestorsHeadings)
		item.Title = str(raw, "heading1")
		item.Heading = entity.Paragraph(str(raw, "heading2"))
		textBlock(item, raw, "", "description")
		s.Items = append(s.Items, *item)
	}
	return s
}

// Investors maps the investors[0].investor profile cards.
func (n Normalizer) Investors(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionInvestors)
	for _, raw := range list(entry, "investor") {
		item := entity.NewSection(SectionInvestors)
		item.Title = str(raw, "author_name")
		textBlock(item, raw, "", "author_info")
		if url := str(raw, "linkedIn_url"); url != "" {
			item.Link = &entity.Link{Label: "LinkedIn", URL: url}
		}
		n.attach(item, raw, "profile", FormatOriginal, item.Title)
		s.Items = append(s.Items, *item)
	}
	return s
}

// InvestorsForm maps investors[0].form, the headline beside the enquiry
// form.
func (n Normalizer) InvestorsForm(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "form")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionInvestorsForm)
	s.Title = str(c, "heading1")
	s.Heading = entity.Paragraph(str(c, "heading2"))
	n.attach(s, c, "image", FormatOriginal, s.Title)
	return s
}
