package normalize

import (
	"propellus-site/internal/domain/entity"
)

// cardColors cycles over feature cards that have no colour of their own.
var cardColors = []string{"bg-blue-50", "bg-yellow-50", "bg-green-50", "bg-purple-50"}

// OTAHero maps ota.heroSection: a rich title, the intro, a short tagline
// and the partner logos, one item per logo.
func (n Normalizer) OTAHero(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "heroSection")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionOTAHero)
	s.Title = richText(c, "title").Text()
	s.Body = richText(c, "intro")
	s.Summary = s.Body.PlainText()
	s.SetField("tagline", str(c, "desc"))
	for _, raw := range list(c, "logos") {
		alt := str(raw, "logoImage.name")
		if alt == "" {
			alt = "logo"
		}
		logo := entity.NewSection(SectionOTAHero)
		n.attach(logo, raw, "logoImage", FormatOriginal, alt)
		if len(logo.Media) > 0 {
			s.Items = append(s.Items, *logo)
		}
	}
	return s
}

// OTAMetrics maps ota.metrics: an eyebrow heading, a rich intro and the
// figure cards.
func (n Normalizer) OTAMetrics(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "metrics")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionOTAMetrics)
	s.Title = str(c, "heading")
	s.Heading = richText(c, "intro")
	for _, raw := range list(c, "cards") {
		card := entity.NewSection(SectionOTAMetrics)
		card.Title = str(raw, "percentage")
		textBlock(card, raw, "", "desc")
		s.Items = append(s.Items, *card)
	}
	return s
}

// OTAFeatures maps ota.features: the intro block, a call to action and
// the feature cards.
func (n Normalizer) OTAFeatures(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "features")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionOTAFeatures)
	s.Title = str(c, "title")
	textBlock(s, c, "heading", "desc")
	s.SetField("intro", plain(c, "intro"))
	if label := str(c, "buttonText"); label != "" {
		url := str(c, "buttonUrl")
		if url == "" {
			url = "#"
		}
		s.Link = &entity.Link{Label: label, URL: url}
	}
	for i, raw := range list(c, "cards") {
		card := entity.NewSection(SectionOTAFeatures)
		card.Title = str(raw, "heading")
		textBlock(card, raw, "", "desc")
		color := str(raw, "bgColor")
		if color == "" {
			color = cardColors[i%len(cardColors)]
		}
		card.SetField("color", color)
		n.attach(card, raw, "logo", FormatOriginal, card.Title)
		s.Items = append(s.Items, *card)
	}
	return s
}

// OTAVisaIntegration maps ota.visaIntegration_section1.
func (n Normalizer) OTAVisaIntegration(doc Doc) *entity.Section {
	return n.bulletPanel(doc, SectionOTAVisaIntegration, "visaIntegration_section1")
}

// OTAFairSection maps ota.fairSection.
func (n Normalizer) OTAFairSection(doc Doc) *entity.Section {
	return n.bulletPanel(doc, SectionOTAFairSection, "fairSection")
}

// bulletPanel maps a rich title, an illustration and a list of icon
// bullet points.
func (n Normalizer) bulletPanel(doc Doc, name, path string) *entity.Section {
	c, ok := entryComponent(doc, path)
	if !ok {
		return nil
	}
	s := entity.NewSection(name)
	s.Heading = richText(c, "title")
	n.attach(s, c, "image", FormatOriginal, s.Heading.Text())
	for _, raw := range list(c, "bulletPoints") {
		point := entity.NewSection(name)
		point.Body = richText(raw, "point")
		point.Summary = point.Body.PlainText()
		n.attach(point, raw, "icon", FormatOriginal, "")
		s.Bullets = append(s.Bullets, point.Summary)
		s.Items = append(s.Items, *point)
	}
	return s
}

// OTAVisaAPI maps ota.VisaApi.
func (n Normalizer) OTAVisaAPI(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "VisaApi")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionOTAVisaAPI)
	s.Heading = entity.Paragraph(str(c, "heading"))
	textBlock(s, c, "", "desc")
	n.attach(s, c, "Image", FormatOriginal, str(c, "heading"))
	return s
}

// OTAContactLogos maps ota.contactForm: the copy above the contact form
// and the partner logo strip.
func (n Normalizer) OTAContactLogos(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "contactForm")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionOTAContactLogos)
	s.Heading = richText(c, "title")
	s.Body = richText(c, "intro")
	s.Summary = plain(c, "desc")
	for _, raw := range list(c, "logos") {
		if ref, ok := n.media.Media(raw, "logoImage", FormatOriginal, "logo"); ok {
			s.Media = append(s.Media, ref)
		}
	}
	return s
}
