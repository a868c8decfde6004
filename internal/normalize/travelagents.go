package normalize

import (
	"propellus-site/internal/domain/entity"
)

// TAHero maps travelagents[0].hero.
func (n Normalizer) TAHero(doc Doc) *entity.Section {
	hero, ok := entryComponent(doc, "hero")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTAHero)
	s.Title = str(hero, "heading1")
	s.Heading = entity.Paragraph(str(hero, "heading2"))
	return s
}

// TAVisaProcess maps travelagents[0].visaprocess.
func (n Normalizer) TAVisaProcess(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "visaprocess")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTAVisaProcess)
	s.Heading = entity.Paragraph(str(c, "heading1"))
	textBlock(s, c, "", "description")
	n.attach(s, c, "image", FormatOriginal, str(c, "heading1"))
	return s
}

// TAProblem maps travelagents[0].travelagentproblem.
func (n Normalizer) TAProblem(doc Doc) *entity.Section {
	return n.threePoints(doc, SectionTAProblem, "travelagentproblem")
}

// TASolution maps travelagents[0].solution.
func (n Normalizer) TASolution(doc Doc) *entity.Section {
	return n.threePoints(doc, SectionTASolution, "solution")
}

// threePoints maps a heading with subheading1..3/description1..3 and an
// image.
func (n Normalizer) threePoints(doc Doc, name, path string) *entity.Section {
	c, ok := entryComponent(doc, path)
	if !ok {
		return nil
	}
	s := entity.NewSection(name)
	s.Heading = entity.Paragraph(str(c, "heading"))
	s.Items = numbered(c, name, "subheading", "description", 3)
	n.attach(s, c, "image", FormatOriginal, str(c, "heading"))
	return s
}

// TABenefits maps travelagents[0].benefits. The CMS field is "Heading"
// with a capital H.
func (n Normalizer) TABenefits(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "benefits")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTABenefits)
	s.Heading = entity.Paragraph(firstStr(c, "Heading", "heading"))
	s.Items = numbered(c, SectionTABenefits, "subheading", "subdescription", 3)
	return s
}

// TAFeatures maps travelagents[0].heading.mainheading together with the
// featureSeaction cards. Each card keeps only the first text leaf of its
// description.
func (n Normalizer) TAFeatures(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTAFeatures)
	s.Heading = entity.Paragraph(str(entry, "heading.mainheading"))
	for _, raw := range list(entry, "featureSeaction") {
		item := entity.NewSection(SectionTAFeatures)
		item.Title = str(raw, "heading")
		item.Summary = leadText(richText(raw, "description"))
		s.Items = append(s.Items, *item)
	}
	return s
}

// TAVisaApplication maps travelagents[0].visaApplication.
func (n Normalizer) TAVisaApplication(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "visaApplication")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTAVisaApp)
	s.Heading = entity.Paragraph(str(c, "heading"))
	n.attach(s, c, "image", FormatOriginal, str(c, "heading"))
	return s
}

// TALove maps travelagents[0].travelagentlove: a heading over two images.
func (n Normalizer) TALove(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "travelagentlove")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTALove)
	s.Heading = entity.Paragraph(str(c, "heading"))
	n.attach(s, c, "image1", FormatOriginal, str(c, "heading"))
	n.attach(s, c, "image2", FormatOriginal, str(c, "heading"))
	return s
}

// leadText returns the text of the first leaf of the first block.
func leadText(rt entity.RichText) string {
	if len(rt) == 0 || len(rt[0].Children) == 0 {
		return ""
	}
	return rt[0].Children[0].Text
}
