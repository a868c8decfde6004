package normalize

import (
	"strconv"

	"github.com/tidwall/gjson"

	"propellus-site/internal/domain/entity"
)

// AboutIntro maps the top-level about-us fields: the page heading, the
// intro paragraphs and the banner image.
func (n Normalizer) AboutIntro(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionAboutIntro)
	s.Title = str(entry, "aboutUs_heading")
	s.Body = richText(entry, "aboutUs_intro")
	s.Summary = s.Body.PlainText()
	alt := str(entry, "aboutUs_Image.name")
	if alt == "" {
		alt = "About Us"
	}
	n.attach(s, entry, "aboutUs_Image", FormatOriginal, alt)
	if s.Title == "" && len(s.Body) == 0 && len(s.Media) == 0 {
		return nil
	}
	return s
}

// Mission maps the first about-us.mission_section row.
func (n Normalizer) Mission(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "mission_section")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionMission)
	s.Title = str(c, "title")
	textBlock(s, c, "heading", "desc")
	alt := s.Title
	if alt == "" {
		alt = "Mission"
	}
	n.attach(s, c, "image", FormatOriginal, alt)
	return s
}

// Vision maps about-us.vision_section, a list of text-and-image rows.
func (n Normalizer) Vision(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	rows := list(entry, "vision_section")
	if len(rows) == 0 {
		return nil
	}
	s := entity.NewSection(SectionVision)
	for _, row := range rows {
		item := entity.NewSection(SectionVision)
		item.Title = str(row, "title")
		textBlock(item, row, "heading", "desc")
		n.attach(item, row, "image", FormatOriginal, "Vision illustration")
		s.Items = append(s.Items, *item)
	}
	return s
}

// PropellusValues maps about-us.creatingPropellusValues.
func (n Normalizer) PropellusValues(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	rows := list(entry, "creatingPropellusValues")
	if len(rows) == 0 {
		return nil
	}
	s := entity.NewSection(SectionPropellusValues)
	for _, row := range rows {
		item := entity.NewSection(SectionPropellusValues)
		item.Title = str(row, "heading")
		textBlock(item, row, "heading", "desc")
		n.attach(item, row, "image", FormatOriginal, item.Title)
		s.Items = append(s.Items, *item)
	}
	return s
}

// ValueSlides maps the first about-us.value component and its slides.
func (n Normalizer) ValueSlides(doc Doc) *entity.Section {
	return n.slideDeck(doc, SectionValueSlides, "value", "value_slides")
}

// RoadmapSlides maps the first about-us.roadmap component and its slides.
func (n Normalizer) RoadmapSlides(doc Doc) *entity.Section {
	return n.slideDeck(doc, SectionRoadmapSlides, "roadmap", "roadmap_slides")
}

func (n Normalizer) slideDeck(doc Doc, name, componentPath, slidesPath string) *entity.Section {
	deck, ok := entryComponent(doc, componentPath)
	if !ok {
		return nil
	}
	s := entity.NewSection(name)
	s.Title = str(deck, "title")
	textBlock(s, deck, "heading", "desc")
	s.Slides = n.slides(deck, slidesPath)
	return s
}

// slides maps a list of carousel cards. The image alt falls back to the
// card heading, then to "Slide".
func (n Normalizer) slides(v gjson.Result, path string) []entity.Slide {
	slides := []entity.Slide{}
	for _, raw := range list(v, path) {
		heading := str(raw, "heading")
		alt := heading
		if alt == "" {
			alt = "Slide"
		}
		src, _ := n.media.Media(raw, "image", FormatOriginal, alt)
		slides = append(slides, entity.Slide{
			Src:         src,
			Heading:     heading,
			Description: plain(raw, "desc"),
		})
	}
	return slides
}

// MeetTheTeam maps about-us.meet_the_team, one card per member with the
// member's designation.
func (n Normalizer) MeetTheTeam(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	members := list(entry, "meet_the_team")
	if len(members) == 0 {
		return nil
	}
	s := entity.NewSection(SectionMeetTheTeam)
	s.Title = "Meet the Team"
	for _, raw := range members {
		member := entity.NewSection(SectionMeetTheTeam)
		member.Title = str(raw, "title")
		member.SetField("designation", str(raw, "designation"))
		n.attach(member, raw, "image", FormatSmall, member.Title)
		s.Items = append(s.Items, *member)
	}
	return s
}

// AboutLogos maps about-us.logos: a title over a strip of partner logos.
// Logos come either as the fixed logo1..logo4 uploads or as a media list.
func (n Normalizer) AboutLogos(doc Doc) *entity.Section {
	c, ok := entryComponent(doc, "logos")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionAboutLogos)
	s.Title = str(c, "title")
	for i := 1; i <= 4; i++ {
		n.attach(s, c, "logo"+strconv.Itoa(i), FormatOriginal, "Logo")
	}
	s.Media = append(s.Media, n.media.MediaList(c, "logos", FormatOriginal, "Logo")...)
	return s
}

// TeamAndAdvisors maps about-us.our_team_and_advisors: an intro, a team
// photo and the advisor cards.
func (n Normalizer) TeamAndAdvisors(doc Doc) *entity.Section {
	team, ok := entryComponent(doc, "our_team_and_advisors")
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTeamAndAdvisors)
	s.Title = firstStr(team, "title", "heading")
	s.Heading = entity.Paragraph(str(team, "advisor_heading"))
	s.Body = richText(team, "intro")
	s.Summary = s.Body.PlainText()
	n.attach(s, team, "team_image", FormatLarge, "Our team")
	for _, raw := range list(team, "advisors") {
		advisor := entity.NewSection(SectionTeamAndAdvisors)
		advisor.Title = str(raw, "advisor_title")
		advisor.Body = richText(raw, "advisor_des")
		advisor.Summary = advisor.Body.PlainText()
		n.attach(advisor, raw, "advisors_image", FormatThumbnail, advisor.Title)
		s.Items = append(s.Items, *advisor)
	}
	return s
}
